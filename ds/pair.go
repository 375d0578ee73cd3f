package ds

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{first, second}.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
