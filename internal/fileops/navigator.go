package fileops

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/LFroesch/dirman/internal/logger"
)

// invalidPathText is rendered in place of a path that is not valid UTF-8.
const invalidPathText = "Error: Incorrect Path"

// Kind classifies a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "Directory"
	case KindSymlink:
		return "Symlink"
	default:
		return "File"
	}
}

// Metadata describes a single entry of the current directory. It is looked up
// on demand and never cached.
type Metadata struct {
	Name string
	Kind Kind
	Size int64
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithTrash makes Delete try trash first. Permanent removal is used when it fails.
func WithTrash(trash func(path string) error) Option {
	return func(n *Navigator) {
		n.trash = trash
	}
}

// Navigator tracks the current working directory and performs file
// operations relative to it. Paths only ever change by one segment at a time.
type Navigator struct {
	fs    billy.Filesystem
	path  string
	trash func(path string) error
}

// New returns a Navigator positioned at start, which must be an absolute
// path to an existing directory on fs.
func New(fs billy.Filesystem, start string, opts ...Option) (*Navigator, error) {
	if !filepath.IsAbs(start) {
		return nil, NewFileError("path is not absolute", start, nil)
	}
	start = filepath.Clean(start)

	info, err := fs.Stat(start)
	if err != nil {
		return nil, NewFileError("cannot open directory", start, err)
	}
	if !info.IsDir() {
		return nil, NewFileError("not a directory", start, nil)
	}

	n := &Navigator{fs: fs, path: start}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// NewFromWorkingDir returns a Navigator over the host filesystem, starting in
// the process working directory.
func NewFromWorkingDir(opts ...Option) (*Navigator, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, NewFileError("cannot determine working directory", "", err)
	}
	return New(osfs.New(string(filepath.Separator)), wd, opts...)
}

// List returns the names of the immediate children of the current directory
// in filesystem listing order. Names that are not valid UTF-8 are skipped.
func (n *Navigator) List() ([]string, error) {
	infos, err := n.fs.ReadDir(n.path)
	if err != nil {
		return nil, NewFileError("couldn't fetch directory entries", n.path, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if name == "" || !utf8.ValidString(name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Path returns the raw current path.
func (n *Navigator) Path() string {
	return n.path
}

// CurrentPath returns the current path for display.
func (n *Navigator) CurrentPath() string {
	if !utf8.ValidString(n.path) {
		return invalidPathText
	}
	return n.path
}

// Descend appends name to the current path. Existence is not checked; a bad
// descent shows up as a List failure.
func (n *Navigator) Descend(name string) {
	n.path = filepath.Join(n.path, name)
}

// Ascend drops the last path segment. At the root it does nothing.
func (n *Navigator) Ascend() {
	n.path = filepath.Dir(n.path)
}

// Resolve joins name onto the current path.
func (n *Navigator) Resolve(name string) (string, error) {
	if name == "" {
		return "", NewFileError("name cannot be empty", "", nil)
	}
	full := filepath.Join(n.path, name)
	if !utf8.ValidString(full) {
		return "", NewFileError("incorrect path", "", nil)
	}
	return full, nil
}

// Metadata stats name in the current directory. The second result is false
// when the entry cannot be stat'ed for any reason.
func (n *Navigator) Metadata(name string) (Metadata, bool) {
	if name == "" {
		return Metadata{}, false
	}
	info, err := n.fs.Lstat(filepath.Join(n.path, name))
	if err != nil {
		return Metadata{}, false
	}
	return Metadata{Name: name, Kind: kindOf(info), Size: info.Size()}, true
}

func kindOf(info os.FileInfo) Kind {
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return KindSymlink
	case info.IsDir():
		return KindDirectory
	case info.Mode().IsRegular():
		return KindFile
	default:
		// devices, sockets and pipes are removed like links
		return KindSymlink
	}
}

// Rename moves oldPath to newPath. The destination's parent must exist and
// the destination itself must not.
func (n *Navigator) Rename(oldPath, newPath string) error {
	oldInfo, err := n.fs.Lstat(oldPath)
	if err != nil {
		return NewFileError("cannot rename", oldPath, err)
	}
	if filepath.Clean(oldPath) == filepath.Clean(newPath) {
		return nil
	}
	if err := n.requireDir(filepath.Dir(newPath)); err != nil {
		return err
	}
	if newInfo, err := n.fs.Lstat(newPath); err == nil && !os.SameFile(oldInfo, newInfo) {
		return NewFileError("destination already exists", newPath, os.ErrExist)
	}

	if err := n.fs.Rename(oldPath, newPath); err != nil {
		return NewFileError("insufficient privileges", "", err)
	}
	return nil
}

// Delete removes fullPath. Directories are removed with their contents.
func (n *Navigator) Delete(fullPath string, kind Kind) error {
	if n.trash != nil {
		err := n.trash(fullPath)
		if err == nil {
			return nil
		}
		logger.Warn("Trash failed for %s, deleting permanently: %v", fullPath, err)
	}

	var err error
	if kind == KindDirectory {
		err = util.RemoveAll(n.fs, fullPath)
	} else {
		err = n.fs.Remove(fullPath)
	}
	if err != nil {
		return NewFileError("cannot delete", fullPath, err)
	}
	return nil
}

// Create makes a new empty file. It never truncates an existing file and
// never creates missing parent directories.
func (n *Navigator) Create(fullPath string) error {
	if err := n.requireDir(filepath.Dir(fullPath)); err != nil {
		return err
	}

	file, err := n.fs.OpenFile(fullPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return NewFileError("cannot create file", fullPath, err)
	}
	if err := file.Close(); err != nil {
		return NewFileError("cannot create file", fullPath, err)
	}
	return nil
}

// requireDir fails unless dir exists and is a directory. billy's osfs would
// otherwise create missing parents on Rename and OpenFile.
func (n *Navigator) requireDir(dir string) error {
	info, err := n.fs.Stat(dir)
	if err != nil {
		return NewFileError("parent directory does not exist", dir, err)
	}
	if !info.IsDir() {
		return NewFileError("not a directory", dir, nil)
	}
	return nil
}
