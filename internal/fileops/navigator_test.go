package fileops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deniedFS fails every rename with a permission error.
type deniedFS struct {
	billy.Filesystem
}

func (deniedFS) Rename(from, to string) error {
	return &os.LinkError{Op: "rename", Old: from, New: to, Err: os.ErrPermission}
}

func newTestNavigator(t *testing.T, opts ...Option) (*Navigator, string) {
	t.Helper()
	dir := t.TempDir()
	nav, err := New(osfs.New("/"), dir, opts...)
	require.NoError(t, err)
	return nav, dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewRejectsBadStart(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	writeFile(t, file, "x")

	_, err := New(osfs.New("/"), "relative/path")
	assert.True(t, IsFileError(err))

	_, err = New(osfs.New("/"), filepath.Join(dir, "missing"))
	assert.True(t, IsFileError(err))

	_, err = New(osfs.New("/"), file)
	assert.True(t, IsFileError(err))
}

func TestList(t *testing.T) {
	nav, dir := newTestNavigator(t)
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0755))

	names, err := nav.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b"}, names)
}

func TestListEmptyDirectory(t *testing.T) {
	nav, _ := newTestNavigator(t)

	names, err := nav.List()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestListFailsAfterBadDescend(t *testing.T) {
	nav, dir := newTestNavigator(t)
	writeFile(t, filepath.Join(dir, "a.txt"), "a")

	nav.Descend("a.txt")
	_, err := nav.List()
	require.Error(t, err)
	assert.True(t, IsFileError(err))
	assert.Contains(t, err.Error(), "couldn't fetch directory entries")
}

func TestDescendAscendRoundTrip(t *testing.T) {
	nav, dir := newTestNavigator(t)

	for _, name := range []string{"x", "nested", "does-not-exist", "with space"} {
		before := nav.Path()
		nav.Descend(name)
		assert.Equal(t, filepath.Join(before, name), nav.Path())
		nav.Ascend()
		assert.Equal(t, before, nav.Path(), "descend(%q) then ascend should restore the path", name)
	}
	assert.Equal(t, dir, nav.Path())
}

func TestAscendAtRootIsIdempotent(t *testing.T) {
	nav, _ := newTestNavigator(t)

	for i := 0; i < 64; i++ {
		nav.Ascend()
	}
	root := nav.Path()
	assert.Equal(t, string(filepath.Separator), root)

	nav.Ascend()
	assert.Equal(t, root, nav.Path())
	nav.Ascend()
	assert.Equal(t, root, nav.Path())
}

func TestCurrentPath(t *testing.T) {
	nav, dir := newTestNavigator(t)
	assert.Equal(t, dir, nav.CurrentPath())

	nav.Descend("bad\xffname")
	assert.Equal(t, invalidPathText, nav.CurrentPath())
}

func TestResolve(t *testing.T) {
	nav, dir := newTestNavigator(t)

	full, err := nav.Resolve("notes.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.md"), full)

	_, err = nav.Resolve("")
	assert.True(t, IsFileError(err))

	_, err = nav.Resolve("bad\xffname")
	assert.True(t, IsFileError(err))
}

func TestMetadata(t *testing.T) {
	nav, dir := newTestNavigator(t)
	writeFile(t, filepath.Join(dir, "a.txt"), "hello")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "link")))

	meta, ok := nav.Metadata("a.txt")
	require.True(t, ok)
	assert.Equal(t, Metadata{Name: "a.txt", Kind: KindFile, Size: 5}, meta)

	meta, ok = nav.Metadata("sub")
	require.True(t, ok)
	assert.Equal(t, KindDirectory, meta.Kind)

	meta, ok = nav.Metadata("link")
	require.True(t, ok)
	assert.Equal(t, KindSymlink, meta.Kind)

	_, ok = nav.Metadata("missing")
	assert.False(t, ok)

	_, ok = nav.Metadata("")
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "File", KindFile.String())
	assert.Equal(t, "Directory", KindDirectory.String())
	assert.Equal(t, "Symlink", KindSymlink.String())
}

func TestRename(t *testing.T) {
	nav, dir := newTestNavigator(t)
	oldPath := filepath.Join(dir, "oldname.txt")
	newPath := filepath.Join(dir, "newname.txt")
	writeFile(t, oldPath, "content")

	require.NoError(t, nav.Rename(oldPath, newPath))
	assert.FileExists(t, newPath)
	assert.NoFileExists(t, oldPath)

	// Renaming onto itself is a no-op
	require.NoError(t, nav.Rename(newPath, newPath))
	assert.FileExists(t, newPath)
}

func TestRenameRefusesOverwrite(t *testing.T) {
	nav, dir := newTestNavigator(t)
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "src")
	writeFile(t, dst, "dst")

	err := nav.Rename(src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrExist))

	data, _ := os.ReadFile(dst)
	assert.Equal(t, "dst", string(data))
}

func TestRenameMissingParent(t *testing.T) {
	nav, dir := newTestNavigator(t)
	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, "src")

	err := nav.Rename(src, filepath.Join(dir, "nope", "src.txt"))
	require.Error(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "nope"))
	assert.FileExists(t, src)
}

func TestRenameMissingSource(t *testing.T) {
	nav, dir := newTestNavigator(t)

	err := nav.Rename(filepath.Join(dir, "ghost"), filepath.Join(dir, "other"))
	assert.True(t, IsFileError(err))
}

func TestRenamePermissionDenied(t *testing.T) {
	dir := t.TempDir()
	nav, err := New(deniedFS{osfs.New("/")}, dir)
	require.NoError(t, err)
	src := filepath.Join(dir, "b")
	writeFile(t, src, "b")

	err = nav.Rename(src, filepath.Join(dir, "c.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Contains(t, err.Error(), "permission denied")
	assert.FileExists(t, src)
}

func TestDeleteFile(t *testing.T) {
	nav, dir := newTestNavigator(t)
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "a")

	require.NoError(t, nav.Delete(path, KindFile))
	assert.NoFileExists(t, path)
}

func TestDeleteDirectoryTree(t *testing.T) {
	nav, dir := newTestNavigator(t)
	root := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "inner", "deeper"), 0755))
	writeFile(t, filepath.Join(root, "inner", "deeper", "f.txt"), "f")
	writeFile(t, filepath.Join(root, "g.txt"), "g")

	require.NoError(t, nav.Delete(root, KindDirectory))
	assert.NoDirExists(t, root)
}

func TestDeleteNonEmptyDirectoryAsFileFails(t *testing.T) {
	nav, dir := newTestNavigator(t)
	root := filepath.Join(dir, "tree")
	require.NoError(t, os.Mkdir(root, 0755))
	writeFile(t, filepath.Join(root, "g.txt"), "g")

	err := nav.Delete(root, KindFile)
	assert.True(t, IsFileError(err))
	assert.DirExists(t, root)
}

func TestDeleteUsesTrashFirst(t *testing.T) {
	var trashed []string
	nav, dir := newTestNavigator(t, WithTrash(func(path string) error {
		trashed = append(trashed, path)
		return os.Remove(path)
	}))
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "a")

	require.NoError(t, nav.Delete(path, KindFile))
	assert.Equal(t, []string{path}, trashed)
	assert.NoFileExists(t, path)
}

func TestDeleteFallsBackWhenTrashFails(t *testing.T) {
	nav, dir := newTestNavigator(t, WithTrash(func(string) error {
		return errors.New("no trash here")
	}))
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "a")

	require.NoError(t, nav.Delete(path, KindFile))
	assert.NoFileExists(t, path)
}

func TestCreate(t *testing.T) {
	nav, dir := newTestNavigator(t)
	path := filepath.Join(dir, "new.txt")

	require.NoError(t, nav.Create(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCreateDoesNotTruncate(t *testing.T) {
	nav, dir := newTestNavigator(t)
	path := filepath.Join(dir, "keep.txt")
	writeFile(t, path, "precious")

	err := nav.Create(path)
	require.Error(t, err)
	data, _ := os.ReadFile(path)
	assert.Equal(t, "precious", string(data))
}

func TestCreateRequiresParent(t *testing.T) {
	nav, dir := newTestNavigator(t)

	err := nav.Create(filepath.Join(dir, "missing", "new.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent directory does not exist")
	assert.NoDirExists(t, filepath.Join(dir, "missing"))
}

func TestFileErrorFormatting(t *testing.T) {
	err := NewFileError("cannot delete", "/tmp/x", os.ErrPermission)
	assert.Equal(t, "File Error: cannot delete: /tmp/x: permission denied", err.Error())
	assert.Equal(t, "/tmp/x", err.Path())
	assert.True(t, errors.Is(err, os.ErrPermission))

	bare := NewFileError("incorrect path", "", nil)
	assert.Equal(t, "File Error: incorrect path", bare.Error())
	assert.False(t, IsFileError(errors.New("plain")))
}

func TestCommandExists(t *testing.T) {
	if !commandExists("ls") {
		t.Error("'ls' command should exist")
	}
	if commandExists("nonexistentcommandxyz123") {
		t.Error("Nonexistent command should return false")
	}
}

func TestPowerShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\tmp\a.txt`, `'C:\tmp\a.txt'`},
		{`it's.txt`, `'it''s.txt'`},
		{`x'); Remove-Item -Recurse -Force ~; ('`, `'x''); Remove-Item -Recurse -Force ~; ('''`},
		{"a\u2019b", "'a\u2019\u2019b'"},
		{`$env:HOME`, `'$env:HOME'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, powerShellQuote(tt.in), "input %q", tt.in)
	}
}

func TestAppleScriptQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/tmp/a.txt", `"/tmp/a.txt"`},
		{`/tmp/say "hi".txt`, `"/tmp/say \"hi\".txt"`},
		{`/tmp/back\slash`, `"/tmp/back\\slash"`},
		{`/tmp/x" & do shell script "rm -rf ~`, `"/tmp/x\" & do shell script \"rm -rf ~"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, appleScriptQuote(tt.in), "input %q", tt.in)
	}
}
