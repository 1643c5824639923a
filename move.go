package file

import (
	"errors"
	"syscall"

	platformerrors "github.com/jmgilman/go/errors"
)

// MoveTo moves the underlying filesystem entry to dest, then reassigns the
// receiver's path to the effective target. If dest names an existing
// directory, the entry keeps its name and moves into that directory.
//
// An existing effective target is refused rather than overwritten. The move
// is an atomic rename whenever source and target share a volume; across
// volumes it falls back to copy-then-delete for regular files.
//
// Failures carry CodeMoveFailed with "source", "target", and
// "source_removed" context. No failure path deletes the source, so
// "source_removed" is always false on an error; a partially written
// fallback target never reaches the target path (see moveByCopy).
func (f *File) MoveTo(dest string) error {
	if dest == "" {
		return platformerrors.New(CodeInvalidPath, "destination path is empty")
	}

	target := f.effectiveTarget(dest)
	if _, err := f.fsys.Lstat(f.resolve(target)); err == nil {
		return moveError(
			platformerrors.Newf(CodeMoveFailed, "target already exists: %s", target),
			f.path, target,
		)
	}

	err := f.fsys.Rename(f.loc(), f.resolve(target))
	if errors.Is(err, syscall.EXDEV) {
		err = f.moveByCopy(target)
	}
	if err != nil {
		var platformErr platformerrors.PlatformError
		if platformerrors.As(err, &platformErr) {
			return err
		}
		return moveError(
			platformerrors.Wrap(err, CodeMoveFailed, "rename failed"),
			f.path, target,
		)
	}

	f.path = target
	return nil
}

// moveByCopy implements the cross-volume fallback: copy the source file to
// target, then delete the source. Directories are not copied; a recursive
// tree move across volumes is out of scope.
func (f *File) moveByCopy(target string) error {
	src := f.loc()
	if f.resolve(target) == src {
		return moveError(
			platformerrors.Newf(CodeMoveFailed, "%s and %s are the same file", f.path, target),
			f.path, target,
		)
	}

	info, err := f.fsys.Stat(src)
	if err != nil {
		return moveError(
			platformerrors.Wrap(err, CodeMoveFailed, "source is not accessible"),
			f.path, target,
		)
	}
	if !info.Mode().IsRegular() {
		return moveError(
			platformerrors.Newf(CodeMoveFailed, "cannot move %s across volumes: not a regular file", f.path),
			f.path, target,
		)
	}

	// copyContents stages and renames, so a failed copy never creates or
	// disturbs the target path.
	if err := copyContents(f.fsys, src, f.resolve(target), info.Mode().Perm()); err != nil {
		return moveError(
			platformerrors.Wrap(err, CodeMoveFailed, "copy to target failed"),
			f.path, target,
		)
	}

	if err := f.fsys.Remove(src); err != nil {
		return moveError(
			platformerrors.Wrap(err, CodeMoveFailed, "copied to target but source was not removed"),
			f.path, target,
		)
	}
	return nil
}

// moveError attaches the standard MoveTo context fields. Every failure path
// leaves the source in place, which keeps "source_removed" constant; the
// field exists so callers never have to infer the data-loss state from the
// message.
func moveError(err error, source, target string) error {
	return platformerrors.WithContextMap(err, map[string]interface{}{
		"source":         source,
		"target":         target,
		"source_removed": false,
	})
}
