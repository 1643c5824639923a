package file

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
)

// ReadFile reads the entire content of the file.
func (f *File) ReadFile() ([]byte, error) {
	fh, err := f.fsys.Open(f.loc())
	if err != nil {
		return nil, wrapPath(err, CodeReadFailed, "open for reading failed", f.path)
	}
	defer func() { _ = fh.Close() }()

	data, err := io.ReadAll(fh)
	if err != nil {
		return nil, wrapPath(err, CodeReadFailed, "read failed", f.path)
	}
	return data, nil
}

// WriteFile writes data to the file, creating it if necessary and
// truncating it otherwise.
func (f *File) WriteFile(data []byte, perm os.FileMode) error {
	fh, err := f.fsys.OpenFile(f.loc(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return wrapPath(err, CodeWriteFailed, "open for writing failed", f.path)
	}
	if _, err := fh.Write(data); err != nil {
		_ = fh.Close()
		return wrapPath(err, CodeWriteFailed, "write failed", f.path)
	}
	if err := fh.Close(); err != nil {
		return wrapPath(err, CodeWriteFailed, "close failed", f.path)
	}
	return nil
}

// Create creates an empty file at the path, truncating an existing one.
func (f *File) Create() error {
	fh, err := f.fsys.Create(f.loc())
	if err != nil {
		return wrapPath(err, CodeWriteFailed, "create failed", f.path)
	}
	if err := fh.Close(); err != nil {
		return wrapPath(err, CodeWriteFailed, "close failed", f.path)
	}
	return nil
}

// CreateDir creates a directory at the path along with any missing parents.
func (f *File) CreateDir() error {
	if err := f.fsys.MkdirAll(f.loc(), 0o755); err != nil {
		return wrapPath(err, CodeWriteFailed, "mkdir failed", f.path)
	}
	return nil
}

// List returns the entries of the directory as Files, in the order the
// backend reports them. Fails if the path is not a directory.
func (f *File) List() ([]*File, error) {
	infos, err := f.fsys.ReadDir(f.loc())
	if err != nil {
		return nil, wrapPath(err, CodeReadFailed, "read directory failed", f.path)
	}

	files := make([]*File, 0, len(infos))
	for _, info := range infos {
		files = append(files, f.derive(filepath.Join(f.path, info.Name())))
	}
	return files, nil
}

// Size returns the size of the file in bytes. For a directory it returns
// the number of entries instead.
func (f *File) Size() (int64, error) {
	info, err := f.fsys.Stat(f.loc())
	if err != nil {
		return 0, wrapPath(err, CodeReadFailed, "stat failed", f.path)
	}
	if info.IsDir() {
		entries, err := f.fsys.ReadDir(f.loc())
		if err != nil {
			return 0, wrapPath(err, CodeReadFailed, "read directory failed", f.path)
		}
		return int64(len(entries)), nil
	}
	return info.Size(), nil
}

// SizeString returns the size in human-readable IEC form ("1.5 KiB"). For
// a directory it returns the entry count as a plain number.
func (f *File) SizeString() (string, error) {
	info, err := f.fsys.Stat(f.loc())
	if err != nil {
		return "", wrapPath(err, CodeReadFailed, "stat failed", f.path)
	}
	if info.IsDir() {
		n, err := f.Size()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}
	return humanize.IBytes(uint64(info.Size())), nil
}

// Mode returns the permission bits of the entry at the path.
func (f *File) Mode() (os.FileMode, error) {
	info, err := f.fsys.Stat(f.loc())
	if err != nil {
		return 0, wrapPath(err, CodeReadFailed, "stat failed", f.path)
	}
	return info.Mode().Perm(), nil
}
