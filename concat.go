package file

import (
	"bytes"

	"github.com/go-git/go-billy/v5"
	platformerrors "github.com/jmgilman/go/errors"
	"golang.org/x/sync/errgroup"
)

// concatReadLimit bounds how many inputs Concatenate reads at once.
const concatReadLimit = 8

// Concatenate reads every path fully and returns the contents joined in
// input order, with no separator inserted and no trailing normalization.
// An empty input sequence yields an empty result and no error.
//
// Inputs may be read in parallel, but assembly is strictly input-ordered.
// On failure the error is the CodeReadFailed for the lowest-index
// unreadable input, with "path" and "index" context, and no partial content
// is returned.
func Concatenate(paths ...string) ([]byte, error) {
	return concatenate(nil, paths)
}

// ConcatenateFS is Concatenate over a custom filesystem backend.
func ConcatenateFS(fsys billy.Filesystem, paths ...string) ([]byte, error) {
	return concatenate(fsys, paths)
}

func concatenate(fsys billy.Filesystem, paths []string) ([]byte, error) {
	if len(paths) == 0 {
		return []byte{}, nil
	}

	var opts []Option
	if fsys != nil {
		opts = append(opts, WithFilesystem(fsys))
	}

	chunks := make([][]byte, len(paths))
	readErrs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(concatReadLimit)
	for i, p := range paths {
		g.Go(func() error {
			f, err := New(p, opts...)
			if err != nil {
				readErrs[i] = err
				return nil
			}
			data, err := f.ReadFile()
			if err != nil {
				readErrs[i] = err
				return nil
			}
			chunks[i] = data
			return nil
		})
	}
	_ = g.Wait()

	// Lowest-index failure wins so error attribution is deterministic
	// regardless of read scheduling.
	for i, err := range readErrs {
		if err != nil {
			return nil, platformerrors.WithContextMap(
				platformerrors.Wrapf(err, CodeReadFailed, "input %d is not readable", i),
				map[string]interface{}{"path": paths[i], "index": i},
			)
		}
	}

	var buf bytes.Buffer
	for _, chunk := range chunks {
		buf.Write(chunk)
	}
	return buf.Bytes(), nil
}
