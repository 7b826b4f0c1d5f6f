package resolve

import (
	"errors"
	"strings"

	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/common"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/tree"
)

var ErrRootBoundary = errors.New("already at root directory")
var ErrDirNotFound = errors.New("directory not found")
var ErrInvalidPath = errors.New("invalid path")
var ErrFileNotFound = errors.New("file not found")

// Navigator tracks the current directory of a session. path always holds the names from root down to current.
type Navigator struct {
	root    *tree.Directory
	current *tree.Directory
	path    []string
}

func NewNavigator(root *tree.Directory) *Navigator {
	return &Navigator{
		root:    root,
		current: root,
		path:    []string{root.Name()},
	}
}

// Cd moves one level down into a child directory of the current directory, or one level up if name is the parent
// marker. On failure the navigator is left untouched.
func (n *Navigator) Cd(name string) error {
	if name == common.ParentMarker {
		if n.current == n.root {
			return ErrRootBoundary
		}

		n.current = n.current.Parent()
		n.path = n.path[:len(n.path)-1]
		return nil
	}

	e, ok := n.current.Lookup(name)
	if !ok {
		return ErrDirNotFound
	}

	dir, ok := e.(*tree.Directory)
	if !ok {
		return ErrDirNotFound
	}

	n.current = dir
	n.path = append(n.path, dir.Name())
	return nil
}

func (n *Navigator) Current() *tree.Directory {
	return n.current
}

func (n *Navigator) Root() *tree.Directory {
	return n.root
}

func (n *Navigator) AtRoot() bool {
	return n.current == n.root
}

// Path returns the slash joined names from root to the current directory, e.g. /RAIZ/docs.
func (n *Navigator) Path() string {
	return common.PathSeparator + strings.Join(n.path, common.PathSeparator)
}

// Split strips leading and trailing separators from an absolute path and splits it into its directory segments and
// the final name.
func Split(path string) (dirs []string, name string) {
	segments := strings.Split(strings.Trim(path, common.PathSeparator), common.PathSeparator)
	return segments[:len(segments)-1], segments[len(segments)-1]
}

// Absolute resolves path to a file starting from root. The current directory of any session is not considered.
// A missing or non directory intermediate segment yields ErrInvalidPath, a missing target or a target that is a
// directory yields ErrFileNotFound.
func Absolute(root *tree.Directory, path string) (*tree.File, error) {
	dirs, name := Split(path)

	parent, err := walkDirs(root, dirs)
	if err != nil {
		return nil, err
	}

	e, ok := parent.Lookup(name)
	if !ok {
		return nil, ErrFileNotFound
	}

	f, ok := e.(*tree.File)
	if !ok {
		return nil, ErrFileNotFound
	}

	return f, nil
}

func walkDirs(root *tree.Directory, segments []string) (*tree.Directory, error) {
	curr := root
	for _, s := range segments {
		e, ok := curr.Lookup(s)
		if !ok {
			return nil, ErrInvalidPath
		}

		dir, ok := e.(*tree.Directory)
		if !ok {
			return nil, ErrInvalidPath
		}
		curr = dir
	}

	return curr, nil
}
