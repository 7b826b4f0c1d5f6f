package filesystem

import (
	"errors"

	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/disk"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/resolve"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/tree"
)

// Errors returned by FileSystem operations. Every one of them is an ordinary outcome of an operation, the session
// keeps working after any of them.
var (
	ErrNameConflict      = errors.New("name conflict")
	ErrNotFound          = errors.New("not found")
	ErrNotEmpty          = errors.New("directory not empty")
	ErrInsufficientSpace = disk.ErrInsufficientSpace
	ErrInvalidPath       = resolve.ErrInvalidPath
	ErrRootBoundary      = resolve.ErrRootBoundary
	ErrInvalidSize       = errors.New("invalid size")
	ErrInvalidName       = tree.ErrInvalidName
)
