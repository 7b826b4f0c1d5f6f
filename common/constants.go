package common

const (
	// RootName is the name of the root directory of every session. Root is never deleted or replaced.
	RootName = "RAIZ"

	ParentMarker  = ".."
	PathSeparator = "/"

	// DefaultDiskSize is the number of blocks of the virtual device when none is given.
	DefaultDiskSize = 100

	// TreeIndent is prepended once per level when dumping the tree.
	TreeIndent = "    "
)
