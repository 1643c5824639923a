package file

import (
	"os"

	platformerrors "github.com/jmgilman/go/errors"
)

// Symlink creates a symbolic link at link whose target is the receiver's
// path, and returns a File describing the link. On the OS backend the
// stored target is the absolutized source path. If link names an existing
// directory the link is created inside it under the source's name.
//
// The target is not validated: creating a dangling symlink is allowed,
// matching filesystem semantics. Fails with CodeSymlinkFailed if the link
// path already exists, the filesystem does not support symlinks there, or
// permission is denied.
func (f *File) Symlink(link string) (*File, error) {
	if link == "" {
		return nil, platformerrors.New(CodeInvalidPath, "link path is empty")
	}

	linkPath := f.effectiveTarget(link)
	if err := f.fsys.Symlink(f.loc(), f.resolve(linkPath)); err != nil {
		return nil, platformerrors.WithContextMap(
			platformerrors.Wrap(err, CodeSymlinkFailed, "symlink creation failed"),
			map[string]interface{}{"target": f.path, "link": linkPath},
		)
	}
	return f.derive(linkPath), nil
}

// HardLink creates a hard link at link to the receiver's file and returns a
// File describing it. Hard links require the OS filesystem; on a custom
// backend the operation fails with CodeLinkFailed.
func (f *File) HardLink(link string) (*File, error) {
	if link == "" {
		return nil, platformerrors.New(CodeInvalidPath, "link path is empty")
	}
	if !f.osBacked {
		return nil, platformerrors.New(CodeLinkFailed, "hard links require the OS filesystem")
	}

	linkPath := f.effectiveTarget(link)
	if err := os.Link(f.loc(), f.resolve(linkPath)); err != nil {
		return nil, platformerrors.WithContextMap(
			platformerrors.Wrap(err, CodeLinkFailed, "hard link creation failed"),
			map[string]interface{}{"target": f.path, "link": linkPath},
		)
	}
	return f.derive(linkPath), nil
}
