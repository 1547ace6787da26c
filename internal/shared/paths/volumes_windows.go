//go:build windows

package paths

import "os"

// VolumeRoots discovers mounted drive roots by probing the letters
// C through Z. Called once at startup; the resolver never re-probes.
func VolumeRoots() map[string]string {
	volumes := make(map[string]string)
	for c := 'c'; c <= 'z'; c++ {
		root := string(c-'a'+'A') + `:\`
		if _, err := os.Stat(root); err == nil {
			volumes[string(c)] = root
		}
	}
	return volumes
}
