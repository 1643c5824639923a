package file

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	platformerrors "github.com/jmgilman/go/errors"
)

// CopyTo copies the file's contents to dest and returns a File for the
// copy. The effective target follows the same rule as MoveTo: an existing
// directory destination receives the source under its own name. The source
// is opened read-only and is guaranteed untouched on failure.
//
// An existing target file is replaced only once the new contents are fully
// written: the copy goes to a staging sibling first and is renamed into
// place, so a failure mid-copy leaves a pre-existing target exactly as it
// was. Copying a file onto itself is refused.
func (f *File) CopyTo(dest string) (*File, error) {
	if dest == "" {
		return nil, platformerrors.New(CodeInvalidPath, "destination path is empty")
	}

	target := f.effectiveTarget(dest)
	if f.resolve(target) == f.loc() {
		return nil, copyError(
			platformerrors.Newf(CodeCopyFailed, "%s and %s are the same file", f.path, target),
			f.path, target,
		)
	}

	info, err := f.fsys.Stat(f.loc())
	if err != nil {
		return nil, copyError(
			platformerrors.Wrap(err, CodeCopyFailed, "source is not accessible"),
			f.path, target,
		)
	}
	if !info.Mode().IsRegular() {
		return nil, copyError(
			platformerrors.Newf(CodeCopyFailed, "cannot copy %s: not a regular file", f.path),
			f.path, target,
		)
	}

	if err := copyContents(f.fsys, f.loc(), f.resolve(target), info.Mode().Perm()); err != nil {
		return nil, copyError(
			platformerrors.Wrap(err, CodeCopyFailed, "copy failed"),
			f.path, target,
		)
	}

	return f.derive(target), nil
}

// copyContents streams src into a staging sibling of dst, then renames it
// over dst. The rename means dst is never observed partially written: until
// the copy completes, dst keeps whatever it held before. The staging file is
// removed on any failure.
func copyContents(fsys billy.Filesystem, src, dst string, perm os.FileMode) error {
	srcF, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcF.Close() }()

	staging := dst + ".partial"
	dstF, err := fsys.OpenFile(staging, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		_ = dstF.Close()
		_ = fsys.Remove(staging)
		return err
	}
	if err := dstF.Close(); err != nil {
		_ = fsys.Remove(staging)
		return err
	}
	if err := fsys.Rename(staging, dst); err != nil {
		_ = fsys.Remove(staging)
		return err
	}
	return nil
}

// copyError attaches the standard CopyTo context fields.
func copyError(err error, source, target string) error {
	return platformerrors.WithContextMap(err, map[string]interface{}{
		"source": source,
		"target": target,
	})
}
