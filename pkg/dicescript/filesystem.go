package dicescript

import "os"

// OSFileSystem is a FileSystem backed directly by the host's disk,
// with no path sandboxing — a host that needs to confine file_read and
// file_write to a subtree should wrap paths itself before implementing
// FileSystem, the same way the teacher leaves path policy to its own
// embedders rather than baking one choice into the library.
type OSFileSystem struct{}

// ReadFile reads path's full contents as text.
func (OSFileSystem) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteFile writes content to path, creating or truncating it.
func (OSFileSystem) WriteFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
