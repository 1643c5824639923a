package file

import (
	"os"
	"path/filepath"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
)

// ExpandUser returns a new File with a leading home-directory marker
// replaced by the current user's home directory. Only a single "~" segment
// at the start of the path is expanded; "~user" forms and a "~" elsewhere
// in the path are left literal. The receiver is never modified, and a path
// without the marker comes back unchanged, which makes the operation
// idempotent.
//
// Fails with CodeHomeDirUnresolvable if the home directory cannot be
// determined from the host environment.
func (f *File) ExpandUser() (*File, error) {
	if f.path != "~" && !strings.HasPrefix(f.path, "~/") {
		return f.derive(f.path), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, platformerrors.Wrap(err, CodeHomeDirUnresolvable, "home directory is not resolvable")
	}
	if f.path == "~" {
		return f.derive(home), nil
	}
	return f.derive(filepath.Join(home, f.path[2:])), nil
}

// ContractUser is the inverse of ExpandUser: it returns a new File with the
// home-directory prefix replaced by "~". A path outside the home directory
// comes back unchanged.
func (f *File) ContractUser() (*File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, platformerrors.Wrap(err, CodeHomeDirUnresolvable, "home directory is not resolvable")
	}
	if f.path == home {
		return f.derive("~"), nil
	}
	if rest, ok := strings.CutPrefix(f.path, home+string(filepath.Separator)); ok {
		return f.derive("~/" + rest), nil
	}
	return f.derive(f.path), nil
}

// Absolutize returns a new File with the home marker expanded and the path
// made absolute against the working directory.
func (f *File) Absolutize() (*File, error) {
	expanded, err := f.ExpandUser()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(expanded.path)
	if err != nil {
		return nil, platformerrors.Wrap(err, CodeInvalidPath, "path cannot be made absolute")
	}
	return f.derive(abs), nil
}

// Canonicalize returns a new File whose path is absolute with the home
// marker expanded and every symbolic link resolved. Unlike Absolutize the
// path must exist, since link resolution walks the real directory tree.
// Only available on the OS filesystem.
//
// Fails with CodeInvalidPath if the path does not exist or a link cycle
// prevents resolution.
func (f *File) Canonicalize() (*File, error) {
	if !f.osBacked {
		return nil, platformerrors.WithContext(
			platformerrors.New(CodeInvalidPath, "canonicalization requires the OS filesystem"),
			"path", f.path,
		)
	}
	expanded, err := f.ExpandUser()
	if err != nil {
		return nil, err
	}
	resolved, err := filepath.EvalSymlinks(expanded.loc())
	if err != nil {
		return nil, wrapPath(err, CodeInvalidPath, "canonicalization failed", f.path)
	}
	return f.derive(resolved), nil
}
