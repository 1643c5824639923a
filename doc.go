// Package file provides a convenience layer over individual filesystem paths.
//
// The central type is File, a lightweight value wrapping a single path string.
// It offers derived queries (Exists, IsFile, IsDir, IsSymlink), path
// derivations (ExpandUser, ContractUser, Absolutize, Parent), and one-shot
// filesystem operations (MoveTo, CopyTo, Symlink, Remove, ReadFile,
// WriteFile). A standalone Concatenate function reads multiple paths and
// joins their contents in input order.
//
// All I/O goes through the go-billy filesystem abstraction. By default a
// File operates on the local OS filesystem, with relative paths resolved
// against the current working directory. A custom filesystem (for example
// memfs for testing) can be supplied via WithFilesystem, in which case paths
// are passed to the backend exactly as given.
//
//	f, err := file.New("~/.vimrc")
//	if err != nil {
//	    return err
//	}
//	f, err = f.ExpandUser()
//	if err != nil {
//	    return err
//	}
//	if f.Exists() {
//	    data, err := f.ReadFile()
//	    // ...
//	}
//
// # Value Semantics
//
// A File holds no open handle and has no hidden state: every operation opens,
// acts on, and closes the underlying resource within the call. Dropping a
// File never touches the filesystem. Derivations such as ExpandUser return a
// new File and leave the receiver untouched. MoveTo is the one mutating
// operation: on success it reassigns the receiver's path to the effective
// target and returns only an error, so a caller never ends up holding both a
// stale and a fresh reference to the same move.
//
// # Error Handling
//
// Mutating operations never swallow an OS-level failure. Errors are wrapped
// as platform errors from the errors library, carrying an operation code
// (CodeMoveFailed, CodeCopyFailed, ...) plus context metadata identifying
// the path(s) involved. Boolean queries are the deliberate exception: a
// probe failure (for example permission denied) folds into a negative
// result. Callers that need the underlying cause can use Stat or Lstat,
// which surface the real error without changing the boolean contract.
//
// # Concurrency
//
// The library defines no concurrency model of its own. Every operation is
// synchronous, and multiple File values may refer to the same path without
// coordination; concurrent callers racing on the same path observe ordinary
// OS race outcomes, which are surfaced faithfully. Concatenate may read its
// inputs in parallel internally, but output assembly and error attribution
// always follow input order.
package file
