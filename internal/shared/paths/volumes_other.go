//go:build !windows

package paths

// VolumeRoots returns no lettered volumes on non-Windows platforms;
// everything hangs off a single root.
func VolumeRoots() map[string]string {
	return map[string]string{}
}
