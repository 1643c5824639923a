package file

import (
	platformerrors "github.com/jmgilman/go/errors"
)

// Error codes returned by this library. All operations fail permanently;
// there is no automatic retry, so every code classifies as permanent.
const (
	// CodeInvalidPath indicates a path input was rejected at construction
	// (empty, or containing a NUL byte).
	CodeInvalidPath platformerrors.ErrorCode = "INVALID_PATH"

	// CodeHomeDirUnresolvable indicates home directory expansion was
	// requested but the home directory could not be determined.
	CodeHomeDirUnresolvable platformerrors.ErrorCode = "HOME_DIR_UNRESOLVABLE"

	// CodeMoveFailed indicates MoveTo failed. The error context carries
	// "source", "target", and "source_removed" so callers can tell whether
	// the source entry still exists.
	CodeMoveFailed platformerrors.ErrorCode = "MOVE_FAILED"

	// CodeCopyFailed indicates CopyTo failed. The source is never written.
	CodeCopyFailed platformerrors.ErrorCode = "COPY_FAILED"

	// CodeSymlinkFailed indicates symbolic link creation failed.
	CodeSymlinkFailed platformerrors.ErrorCode = "SYMLINK_FAILED"

	// CodeLinkFailed indicates hard link creation failed.
	CodeLinkFailed platformerrors.ErrorCode = "LINK_FAILED"

	// CodeRemoveFailed indicates Remove failed, including removal of a
	// non-empty directory or a path that does not exist.
	CodeRemoveFailed platformerrors.ErrorCode = "REMOVE_FAILED"

	// CodeReadFailed indicates a read failed. For Concatenate the context
	// carries "path" and "index" identifying the failing input.
	CodeReadFailed platformerrors.ErrorCode = "READ_FAILED"

	// CodeWriteFailed indicates WriteFile, Create, or CreateDir failed.
	CodeWriteFailed platformerrors.ErrorCode = "WRITE_FAILED"
)

// wrapPath wraps an OS-level failure as a platform error with the path
// attached as context. Returns nil if err is nil.
func wrapPath(err error, code platformerrors.ErrorCode, message, path string) error {
	if err == nil {
		return nil
	}
	return platformerrors.WithContext(
		platformerrors.Wrap(err, code, message),
		"path", path,
	)
}
