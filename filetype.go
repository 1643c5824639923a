package file

import "os"

// Type classifies the filesystem entry a path refers to.
type Type int

const (
	// TypeUnknown indicates the entry does not exist or could not be probed.
	TypeUnknown Type = iota
	// TypeFile indicates a regular file.
	TypeFile
	// TypeDir indicates a directory.
	TypeDir
	// TypeSymlink indicates a symbolic link.
	TypeSymlink
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeFile:
		return "file"
	case TypeDir:
		return "directory"
	case TypeSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Type returns the type of the entry at the path. The link itself is
// classified, not its target. Probe failures fold into TypeUnknown.
func (f *File) Type() Type {
	info, err := f.fsys.Lstat(f.loc())
	if err != nil {
		return TypeUnknown
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return TypeSymlink
	case info.IsDir():
		return TypeDir
	default:
		return TypeFile
	}
}
