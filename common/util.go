package common

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// OneOf tells whether x equals any of opts.
func OneOf[T comparable](x T, opts ...T) bool {
	for _, o := range opts {
		if x == o {
			return true
		}
	}
	return false
}
