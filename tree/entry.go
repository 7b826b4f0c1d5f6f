package tree

import "errors"

var ErrExists = errors.New("entry already exists")
var ErrNotFound = errors.New("entry not found")
var ErrInvalidName = errors.New("invalid entry name")

// Entry is either a *File or a *Directory. It cannot be implemented outside this package, so a type switch over
// those two cases is exhaustive.
type Entry interface {
	Name() string
	entry()
}

var _ Entry = &File{}
var _ Entry = &Directory{}

// File is a leaf of the tree. Data is not bounded by the number of blocks allocated to the file.
type File struct {
	name   string
	Size   int
	Data   string
	Blocks []int
}

func NewFile(name string, size int, blocks []int) *File {
	return &File{
		name:   name,
		Size:   size,
		Blocks: blocks,
	}
}

func (f *File) Name() string { return f.name }

func (f *File) entry() {}

type Directory struct {
	name   string
	parent *Directory

	contents map[string]Entry

	// order keeps names in insertion order so listings are stable.
	order []string
}

func NewDirectory(name string) *Directory {
	return &Directory{
		name:     name,
		contents: make(map[string]Entry),
	}
}

func (d *Directory) Name() string { return d.name }

func (d *Directory) entry() {}

// Parent returns nil for a directory that is not attached to any tree, e.g. the root.
func (d *Directory) Parent() *Directory {
	return d.parent
}

func (d *Directory) Lookup(name string) (Entry, bool) {
	e, ok := d.contents[name]
	return e, ok
}

// Insert adds e as a child of d. Inserted directories get d as their parent.
func (d *Directory) Insert(e Entry) error {
	if e.Name() == "" {
		return ErrInvalidName
	}

	if _, ok := d.contents[e.Name()]; ok {
		return ErrExists
	}

	if dir, ok := e.(*Directory); ok {
		dir.parent = d
	}

	d.contents[e.Name()] = e
	d.order = append(d.order, e.Name())
	return nil
}

// Remove detaches the child with the given name and returns it.
func (d *Directory) Remove(name string) (Entry, error) {
	e, ok := d.contents[name]
	if !ok {
		return nil, ErrNotFound
	}

	delete(d.contents, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}

	if dir, ok := e.(*Directory); ok {
		dir.parent = nil
	}

	return e, nil
}

// Entries returns children in insertion order.
func (d *Directory) Entries() []Entry {
	entries := make([]Entry, 0, len(d.order))
	for _, n := range d.order {
		entries = append(entries, d.contents[n])
	}

	return entries
}

func (d *Directory) Len() int {
	return len(d.contents)
}

func (d *Directory) IsEmpty() bool {
	return len(d.contents) == 0
}
