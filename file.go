package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	platformerrors "github.com/jmgilman/go/errors"
)

// File wraps a single filesystem path.
//
// The zero value is not usable; construct with New. A File holds no open
// handle: every operation performs its filesystem work within the call.
type File struct {
	// path is the textual path exactly as supplied or last assigned by a
	// successful MoveTo. Never empty.
	path string

	// fsys is the filesystem backend all operations go through.
	fsys billy.Filesystem

	// osBacked is true when fsys is the default OS filesystem, in which
	// case relative paths are resolved against the working directory
	// before being handed to the backend.
	osBacked bool
}

// Option configures File construction.
type Option func(*File)

// WithFilesystem sets a custom billy filesystem backend. Paths are passed
// to the backend exactly as given, which makes memfs-backed testing and
// chroot jails behave predictably.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(f *File) {
		f.fsys = fsys
		f.osBacked = false
	}
}

// New constructs a File for the given path.
//
// The path is stored exactly as supplied; no filesystem access happens and
// the path need not exist. An empty path, or one containing a NUL byte, is
// rejected with CodeInvalidPath.
func New(path string, opts ...Option) (*File, error) {
	if path == "" {
		return nil, platformerrors.New(CodeInvalidPath, "path is empty")
	}
	if strings.ContainsRune(path, 0) {
		return nil, platformerrors.New(CodeInvalidPath, "path contains a NUL byte")
	}

	f := &File{
		path:     path,
		fsys:     osfs.New("/"),
		osBacked: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the current path string.
func (f *File) Path() string {
	return f.path
}

// String implements fmt.Stringer.
func (f *File) String() string {
	return f.path
}

// Name returns the final path segment (the file or directory name).
func (f *File) Name() string {
	return filepath.Base(f.path)
}

// Stem returns the final path segment with its extension removed.
func (f *File) Stem() string {
	name := f.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Parent returns a File for the parent directory.
func (f *File) Parent() *File {
	return f.derive(filepath.Dir(f.path))
}

// Filesystem returns the underlying billy filesystem.
func (f *File) Filesystem() billy.Filesystem {
	return f.fsys
}

// Stat returns metadata for the path, following symbolic links. Unlike the
// boolean queries it surfaces the underlying error, so it can distinguish
// "does not exist" from "could not be determined".
func (f *File) Stat() (os.FileInfo, error) {
	return f.fsys.Stat(f.loc())
}

// Lstat returns metadata for the path without following symbolic links.
func (f *File) Lstat() (os.FileInfo, error) {
	return f.fsys.Lstat(f.loc())
}

// Exists reports whether the path exists. A dangling symbolic link counts
// as existing. Any probe failure folds into false; use Stat or Lstat when
// the cause matters.
func (f *File) Exists() bool {
	_, err := f.fsys.Lstat(f.loc())
	return err == nil
}

// IsFile reports whether the path names a regular file, following symlinks.
func (f *File) IsFile() bool {
	info, err := f.fsys.Stat(f.loc())
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether the path names a directory, following symlinks.
func (f *File) IsDir() bool {
	info, err := f.fsys.Stat(f.loc())
	return err == nil && info.IsDir()
}

// IsSymlink reports whether the path itself is a symbolic link.
func (f *File) IsSymlink() bool {
	info, err := f.fsys.Lstat(f.loc())
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// derive returns a new File for path sharing the receiver's backend.
func (f *File) derive(path string) *File {
	return &File{
		path:     path,
		fsys:     f.fsys,
		osBacked: f.osBacked,
	}
}

// resolve maps a user-facing path to the form handed to the backend. On the
// OS backend relative paths are resolved against the working directory;
// custom backends receive paths as given.
func (f *File) resolve(path string) string {
	if !f.osBacked {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// loc returns the receiver's path in backend form.
func (f *File) loc() string {
	return f.resolve(f.path)
}

// effectiveTarget resolves a move/copy/link destination: if dest names an
// existing directory, the receiver's final path segment is appended.
func (f *File) effectiveTarget(dest string) string {
	info, err := f.fsys.Stat(f.resolve(dest))
	if err == nil && info.IsDir() {
		return filepath.Join(dest, f.Name())
	}
	return dest
}
