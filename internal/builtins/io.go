package builtins

import "github.com/dicescript/dicescript/internal/value"

func registerIO() {
	register("file_read", biFileRead)
	register("file_write", biFileWrite)
}

// biFileRead and biFileWrite implement the contract-only file_read/
// file_write intrinsics of spec.md §4.5 through the injectable
// FileSystem capability of SPEC_FULL.md §6a: a Session without one
// configured fails with IoError rather than touching the OS.
func biFileRead(c *Call) (value.Value, error) {
	if err := requireArity(c, "file_read", 1); err != nil {
		return nil, err
	}
	path, ok := c.Args[0].(value.String)
	if !ok {
		return nil, typeErrorf("file_read expects a string path, got %s", c.Args[0].Kind())
	}
	if c.FS == nil {
		return nil, ioErrorf("file system capability not configured")
	}
	content, err := c.FS.ReadFile(string(path))
	if err != nil {
		return nil, ioErrorf("file_read %q: %v", string(path), err)
	}
	return value.String(content), nil
}

func biFileWrite(c *Call) (value.Value, error) {
	if err := requireArity(c, "file_write", 2); err != nil {
		return nil, err
	}
	path, ok := c.Args[0].(value.String)
	if !ok {
		return nil, typeErrorf("file_write expects a string path, got %s", c.Args[0].Kind())
	}
	content, ok := c.Args[1].(value.String)
	if !ok {
		return nil, typeErrorf("file_write expects string content, got %s", c.Args[1].Kind())
	}
	if c.FS == nil {
		return nil, ioErrorf("file system capability not configured")
	}
	if err := c.FS.WriteFile(string(path), string(content)); err != nil {
		return nil, ioErrorf("file_write %q: %v", string(path), err)
	}
	return value.NullValue, nil
}
