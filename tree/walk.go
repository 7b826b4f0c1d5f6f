package tree

// WalkFunc is called for each entry visited by Walk. depth is 0 for the direct children of the walked directory.
type WalkFunc func(e Entry, depth int)

// Walk visits the subtree under dir depth first. A directory is visited before its children and children are
// visited in insertion order. dir itself is not visited.
func Walk(dir *Directory, fn WalkFunc) {
	walk(dir, 0, fn)
}

func walk(dir *Directory, depth int, fn WalkFunc) {
	for _, e := range dir.Entries() {
		fn(e, depth)

		switch e := e.(type) {
		case *Directory:
			walk(e, depth+1, fn)
		case *File:
		}
	}
}

// BlockCount returns the total number of blocks held by files under dir.
func BlockCount(dir *Directory) int {
	total := 0
	Walk(dir, func(e Entry, _ int) {
		if f, ok := e.(*File); ok {
			total += len(f.Blocks)
		}
	})

	return total
}

// Path returns the names from the root of the tree down to dir.
func Path(dir *Directory) []string {
	var names []string
	for d := dir; d != nil; d = d.parent {
		names = append(names, d.name)
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}

	return names
}
