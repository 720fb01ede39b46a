package profile

import (
	"os"
	"path/filepath"
)

// Resolve returns the first profile whose marker exists under dir.
func Resolve(profiles []Profile, dir string) (Profile, bool) {
	for _, p := range profiles {
		if exists(filepath.Join(dir, p.Marker)) {
			return p, true
		}
	}
	return Profile{}, false
}

// Matches returns every profile whose marker exists under dir, in priority
// order. The first element, if any, is what Resolve returns.
func Matches(profiles []Profile, dir string) []Profile {
	var out []Profile
	for _, p := range profiles {
		if exists(filepath.Join(dir, p.Marker)) {
			out = append(out, p)
		}
	}
	return out
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
