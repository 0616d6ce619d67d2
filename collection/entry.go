package collection

import (
	"path"
	"slices"
	"strings"

	"github.com/npillmayer/ordtree"
)

// Kind distinguishes directory entries from file entries.
type Kind int8

// Entry kinds
const (
	DirectoryKind Kind = iota
	FileKind
)

func (k Kind) String() string {
	if k == DirectoryKind {
		return "directory"
	}
	return "file"
}

// Entry is an entry of a collection. It is implemented by *Directory and
// *File (and by their panel counterparts); the set of implementations is
// closed.
type Entry interface {
	EntryID() string
	EntryName() string
	Kind() Kind
	isEntry()
}

// Directory is a directory entry of a collection.
type Directory struct {
	ID   string // full path, e.g. "/data/raw"
	Name string // last path element, e.g. "raw"
	Path string // path of parent directory, "" at top level
}

// File is a file entry of a collection.
type File struct {
	ID   string // full path, e.g. "/data/raw/a.fastq"
	Name string // last path element
	Path string // path of parent directory, "" at top level
	Size int64  // size in bytes
}

func (d Directory) EntryID() string   { return d.ID }
func (d Directory) EntryName() string { return d.Name }
func (d Directory) Kind() Kind        { return DirectoryKind }
func (d Directory) isEntry()          {}

func (f File) EntryID() string   { return f.ID }
func (f File) EntryName() string { return f.Name }
func (f File) Kind() Kind        { return FileKind }
func (f File) isEntry()          {}

var _ Entry = &Directory{}
var _ Entry = &File{}

// NewDirectory creates a directory entry for a slash-separated path.
func NewDirectory(p string) *Directory {
	id, dir, name := splitPath(p)
	return &Directory{ID: id, Name: name, Path: dir}
}

// NewFile creates a file entry for a slash-separated path.
func NewFile(p string, size int64) *File {
	id, dir, name := splitPath(p)
	return &File{ID: id, Name: name, Path: dir, Size: size}
}

// splitPath normalizes p to an absolute path and splits it into directory and
// name. The directory of a top-level path is ordtree.RootID.
func splitPath(p string) (id, dir, name string) {
	id = path.Clean("/" + p)
	dir, name = path.Split(id)
	dir = strings.TrimSuffix(dir, "/")
	return id, dir, name
}

// FilesTree creates a tree of entries. Directories are inserted before files,
// parents before children. Entries whose directory is not part of entries
// end up as orphans, i.e. they are stored but not reachable from the root.
func FilesTree(entries []Entry) ordtree.Tree[Entry] {
	var dirs, files []Entry
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.Kind() == DirectoryKind {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	// a parent path sorts before all paths below it
	slices.SortStableFunc(dirs, func(a, b Entry) int {
		return strings.Compare(a.EntryID(), b.EntryID())
	})
	b := ordtree.NewBuilder(ordtree.Tree[Entry]{})
	for _, e := range slices.Concat(dirs, files) {
		b.Set(&ordtree.Node[Entry]{
			ID:     e.EntryID(),
			Parent: parentOf(e),
			Value:  e,
		})
	}
	tree := b.Tree()
	tracer().Debugf("collection: file tree with %d entries", tree.Len())
	return tree
}

func parentOf(e Entry) string {
	switch v := e.(type) {
	case *Directory:
		return v.Path
	case *File:
		return v.Path
	case *PanelDirectory:
		return v.Path
	case *PanelFile:
		return v.Path
	}
	_, dir, _ := splitPath(e.EntryID())
	return dir
}
