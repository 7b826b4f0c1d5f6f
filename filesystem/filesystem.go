package filesystem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/common"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/disk"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/oplog"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/resolve"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/tree"
)

/*
	FileSystem is a single session over a virtual disk. Names given to Mkdir, Create, Delete and Cd are resolved in
	the current directory, paths given to Write and Read are resolved from root.

	Each operation appends exactly one record to the operation log, whether it succeeds or not, and returns a human
	readable result. On failure the result starts with "Error:" and the returned error wraps one of the package
	errors. A failed operation never leaves the disk or the tree partially modified.

	FileSystem is not safe for concurrent use.
*/

type FileSystem struct {
	id   uuid.UUID
	disk *disk.VirtualDisk
	root *tree.Directory
	nav  *resolve.Navigator
	log  *oplog.Log
	l    *zap.SugaredLogger
}

func New(diskSize int, opts ...Option) *FileSystem {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	root := tree.NewDirectory(o.rootName)
	fs := &FileSystem{
		id:   uuid.New(),
		disk: disk.NewVirtualDisk(diskSize),
		root: root,
		nav:  resolve.NewNavigator(root),
		log:  oplog.New(),
		l:    o.logger,
	}

	fs.l.Debugw("session started", "session", fs.id, "blocks", fs.disk.Size())
	return fs
}

func (fs *FileSystem) Mkdir(name string) (string, error) {
	cmd := "mkdir " + name

	if err := fs.nav.Current().Insert(tree.NewDirectory(name)); err != nil {
		if errors.Is(err, tree.ErrExists) {
			return fs.fail(cmd, "Directory already exists", ErrNameConflict)
		}
		return fs.fail(cmd, "Invalid directory name", err)
	}

	fs.l.Debugw("mkdir", "name", name, "path", fs.nav.Path())
	return fs.succeed(cmd, fmt.Sprintf("Directory created: %s.", name), fmt.Sprintf("Directory '%s' created successfully.", name))
}

func (fs *FileSystem) Create(name string, size int) (string, error) {
	cmd := fmt.Sprintf("create %s %d", name, size)
	dir := fs.nav.Current()

	// checked before allocating so that a rejected name never holds blocks
	if name == "" {
		return fs.fail(cmd, "Invalid file name", ErrInvalidName)
	}
	if _, ok := dir.Lookup(name); ok {
		return fs.fail(cmd, "File already exists", ErrNameConflict)
	}
	if size < 0 {
		return fs.fail(cmd, "Invalid size", ErrInvalidSize)
	}

	blocks, err := fs.disk.Allocate(size)
	if err != nil {
		fs.l.Debugw("allocation failed", "name", name, "size", size, "free", fs.disk.FreeSpace())
		return fs.fail(cmd, "Insufficient space", ErrInsufficientSpace)
	}

	if err := dir.Insert(tree.NewFile(name, size, blocks)); err != nil {
		fs.disk.Free(blocks)
		return fs.fail(cmd, "File already exists", fmt.Errorf("%w: %w", ErrNameConflict, err))
	}

	fs.l.Debugw("create", "name", name, "blocks", blocks, "free", fs.disk.FreeSpace())
	return fs.succeed(cmd,
		fmt.Sprintf("File created: %s, Blocks allocated: %s.", name, formatBlocks(blocks)),
		fmt.Sprintf("File '%s' created successfully.", name))
}

func (fs *FileSystem) Delete(name string) (string, error) {
	cmd := "delete " + name
	dir := fs.nav.Current()

	e, ok := dir.Lookup(name)
	if !ok {
		return fs.fail(cmd, "File/Directory not found", ErrNotFound)
	}

	var details string
	switch e := e.(type) {
	case *tree.File:
		fs.disk.Free(e.Blocks)
		details = fmt.Sprintf("File deleted: %s, Blocks freed: %s.", name, formatBlocks(e.Blocks))
		fs.l.Debugw("delete file", "name", name, "blocks", e.Blocks, "free", fs.disk.FreeSpace())
	case *tree.Directory:
		if !e.IsEmpty() {
			return fs.fail(cmd, "Directory is not empty", ErrNotEmpty)
		}
		details = fmt.Sprintf("Directory deleted: %s.", name)
		fs.l.Debugw("delete directory", "name", name)
	}

	// name was looked up above, removing it cannot fail
	_, err := dir.Remove(name)
	common.PanicIfErr(err)

	return fs.succeed(cmd, details, fmt.Sprintf("'%s' deleted successfully.", name))
}

// Ls lists the direct children of the current directory, one per line.
func (fs *FileSystem) Ls() (string, error) {
	entries := fs.nav.Current().Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, listing(e))
	}

	return fs.succeed("ls", fmt.Sprintf("Contents: [%s]", strings.Join(lines, ", ")), strings.Join(lines, "\n"))
}

func (fs *FileSystem) Cd(name string) (string, error) {
	cmd := "cd " + name

	if err := fs.nav.Cd(name); err != nil {
		if errors.Is(err, resolve.ErrRootBoundary) {
			return fs.fail(cmd, "Already at root directory", ErrRootBoundary)
		}
		return fs.fail(cmd, "Directory not found", fmt.Errorf("%w: %w", ErrNotFound, err))
	}

	fs.l.Debugw("cd", "path", fs.nav.Path())
	msg := fmt.Sprintf("Navigated to %s.", fs.nav.Path())
	return fs.succeed(cmd, msg, msg)
}

func (fs *FileSystem) Info() (string, error) {
	msg := fmt.Sprintf("Disk size: %d, Free space: %d, Current path: %s.", fs.disk.Size(), fs.disk.FreeSpace(), fs.nav.Path())
	return fs.succeed("info", msg, msg)
}

// Write replaces the whole content of the file at path with data. The length of data is not checked against the
// blocks allocated to the file.
func (fs *FileSystem) Write(path, data string) (string, error) {
	cmd := fmt.Sprintf("write %s %s", path, data)

	f, err := fs.resolveFile(path)
	if err != nil {
		return fs.failPath(cmd, err)
	}

	f.Data = data
	fs.l.Debugw("write", "path", path, "bytes", len(data))
	return fs.succeed(cmd, fmt.Sprintf("Data written to file: %s.", f.Name()), fmt.Sprintf("Data written to file '%s'.", f.Name()))
}

func (fs *FileSystem) Read(path string) (string, error) {
	cmd := "read " + path

	f, err := fs.resolveFile(path)
	if err != nil {
		return fs.failPath(cmd, err)
	}

	return fs.succeed(cmd, fmt.Sprintf("Data read from file: %s.", f.Name()), fmt.Sprintf("Contents of file '%s': %s", f.Name(), f.Data))
}

// Tree dumps the whole tree from root. Every level is indented by common.TreeIndent and every line, including the
// last one, ends with a newline.
func (fs *FileSystem) Tree() (string, error) {
	sb := strings.Builder{}
	files, dirs := 0, 0
	tree.Walk(fs.root, func(e tree.Entry, depth int) {
		sb.WriteString(strings.Repeat(common.TreeIndent, depth))
		switch e := e.(type) {
		case *tree.Directory:
			dirs++
			sb.WriteString(listing(e))
		case *tree.File:
			files++
			sb.WriteString(fmt.Sprintf("%s (%d blocks)", listing(e), e.Size))
		}
		sb.WriteString("\n")
	})

	details := fmt.Sprintf("Directories: %d, Files: %d, Blocks in use: %d.", dirs, files, tree.BlockCount(fs.root))
	return fs.succeed("tree", details, sb.String())
}

// Log renders every record appended so far. The record of this call is appended after rendering, so it shows up in
// the next call.
func (fs *FileSystem) Log() (string, error) {
	out := fs.log.String()
	return fs.succeed("log", fmt.Sprintf("Records: %d.", fs.log.Len()), out)
}

// ExportLog writes the operation log of this session to path as json. Exporting is not an operation of the session
// and is not recorded in the log.
func (fs *FileSystem) ExportLog(path string) error {
	return oplog.Export(fs.log, fs.id, path)
}

func (fs *FileSystem) SessionID() uuid.UUID {
	return fs.id
}

func (fs *FileSystem) CurrentPath() string {
	return fs.nav.Path()
}

func (fs *FileSystem) Records() []oplog.Record {
	return fs.log.Records()
}

func (fs *FileSystem) FreeSpace() int {
	return fs.disk.FreeSpace()
}

func (fs *FileSystem) DiskSize() int {
	return fs.disk.Size()
}

func (fs *FileSystem) resolveFile(path string) (*tree.File, error) {
	return resolve.Absolute(fs.root, path)
}

func (fs *FileSystem) failPath(cmd string, err error) (string, error) {
	if errors.Is(err, resolve.ErrInvalidPath) {
		return fs.fail(cmd, "Invalid path", ErrInvalidPath)
	}
	return fs.fail(cmd, "File not found", fmt.Errorf("%w: %w", ErrNotFound, err))
}

func (fs *FileSystem) succeed(cmd, details, result string) (string, error) {
	fs.log.Success(cmd, details)
	return result, nil
}

// fail records the failure and returns its result. msg is given without the trailing period.
func (fs *FileSystem) fail(cmd, msg string, err error) (string, error) {
	fs.log.Error(cmd, msg+".")
	fs.l.Debugw("operation failed", "cmd", cmd, "err", err)
	return "Error: " + msg + ".", err
}

func listing(e tree.Entry) string {
	switch e := e.(type) {
	case *tree.Directory:
		return "[DIR] " + e.Name()
	case *tree.File:
		return "[FILE] " + e.Name()
	}
	panic("unknown entry")
}

func formatBlocks(blocks []int) string {
	s := make([]string, len(blocks))
	for i, b := range blocks {
		s[i] = strconv.Itoa(b)
	}

	return "[" + strings.Join(s, ", ") + "]"
}
