package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveTo_IntoExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "a")
	dstDir := filepath.Join(dir, "b")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.MkdirAll(dstDir, 0o755))
	src := writeTestFile(t, srcDir, "file.txt", "payload")

	f, err := New(src)
	require.NoError(t, err)
	require.NoError(t, f.MoveTo(dstDir))

	want := filepath.Join(dstDir, "file.txt")
	assert.Equal(t, want, f.Path())
	assert.NoFileExists(t, src)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestMoveTo_Rename(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "old.txt", "payload")
	dst := filepath.Join(dir, "new.txt")

	f, err := New(src)
	require.NoError(t, err)
	require.NoError(t, f.MoveTo(dst))

	assert.Equal(t, dst, f.Path())
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}

func TestMoveTo_Directory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photos")
	require.NoError(t, os.MkdirAll(src, 0o755))
	writeTestFile(t, src, "cats.png", "img")
	dst := filepath.Join(dir, "albums")

	f, err := New(src)
	require.NoError(t, err)
	require.NoError(t, f.MoveTo(dst))

	assert.Equal(t, dst, f.Path())
	assert.FileExists(t, filepath.Join(dst, "cats.png"))
	assert.NoDirExists(t, src)
}

func TestMoveTo_NonexistentSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.txt")
	dst := filepath.Join(dir, "new.txt")

	f, err := New(src)
	require.NoError(t, err)

	err = f.MoveTo(dst)
	require.Error(t, err)
	assert.Equal(t, CodeMoveFailed, platformerrors.GetCode(err))
	// The destination is left untouched and the value still names the source.
	assert.NoFileExists(t, dst)
	assert.Equal(t, src, f.Path())
}

func TestMoveTo_TargetExists(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "src.txt", "source")
	dst := writeTestFile(t, dir, "dst.txt", "existing")

	f, err := New(src)
	require.NoError(t, err)

	err = f.MoveTo(dst)
	require.Error(t, err)
	assert.Equal(t, CodeMoveFailed, platformerrors.GetCode(err))

	var platformErr platformerrors.PlatformError
	require.True(t, platformerrors.As(err, &platformErr))
	assert.Equal(t, false, platformErr.Context()["source_removed"])

	// Nothing moved or overwritten.
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
	assert.FileExists(t, src)
}

func TestMoveTo_TargetExistsInsideDirectory(t *testing.T) {
	dir := t.TempDir()
	dstDir := filepath.Join(dir, "b")
	require.NoError(t, os.MkdirAll(dstDir, 0o755))
	src := writeTestFile(t, dir, "file.txt", "source")
	writeTestFile(t, dstDir, "file.txt", "existing")

	f, err := New(src)
	require.NoError(t, err)

	err = f.MoveTo(dstDir)
	require.Error(t, err)
	assert.Equal(t, CodeMoveFailed, platformerrors.GetCode(err))
	assert.FileExists(t, src)
}

func TestMoveTo_EmptyDestination(t *testing.T) {
	f, err := New(filepath.Join(t.TempDir(), "src.txt"))
	require.NoError(t, err)

	err = f.MoveTo("")
	require.Error(t, err)
	assert.Equal(t, CodeInvalidPath, platformerrors.GetCode(err))
}

func TestMoveTo_MemfsBackend(t *testing.T) {
	fsys := memfs.New()
	f, err := New("/a/file.txt", WithFilesystem(fsys))
	require.NoError(t, err)
	require.NoError(t, f.WriteFile([]byte("payload"), 0o644))

	require.NoError(t, f.MoveTo("/a/renamed.txt"))
	assert.Equal(t, "/a/renamed.txt", f.Path())

	data, err := f.ReadFile()
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestMoveByCopy_File(t *testing.T) {
	// Exercises the cross-volume fallback directly: EXDEV cannot be
	// provoked reliably inside a single temp directory.
	fsys := memfs.New()
	f, err := New("/src/file.txt", WithFilesystem(fsys))
	require.NoError(t, err)
	require.NoError(t, f.WriteFile([]byte("payload"), 0o644))

	require.NoError(t, f.moveByCopy("/dst/file.txt"))

	moved, err := New("/dst/file.txt", WithFilesystem(fsys))
	require.NoError(t, err)
	data, err := moved.ReadFile()
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	_, err = fsys.Lstat("/src/file.txt")
	assert.Error(t, err)
}

func TestMoveByCopy_SameFileRefused(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "file.txt", "payload")

	f, err := New(src)
	require.NoError(t, err)

	err = f.moveByCopy(src)
	require.Error(t, err)
	assert.Equal(t, CodeMoveFailed, platformerrors.GetCode(err))

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestMoveByCopy_DirectoryRefused(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(src, 0o755))

	f, err := New(src)
	require.NoError(t, err)

	err = f.moveByCopy(filepath.Join(dir, "elsewhere"))
	require.Error(t, err)
	assert.Equal(t, CodeMoveFailed, platformerrors.GetCode(err))

	var platformErr platformerrors.PlatformError
	require.True(t, platformerrors.As(err, &platformErr))
	assert.Equal(t, false, platformErr.Context()["source_removed"])
	assert.DirExists(t, src)
}
