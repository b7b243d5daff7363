package snailfish

// Explode performs one explosion on t: the leftmost pair of two numbers at
// nesting depth ExplodeDepth or deeper is replaced by 0, its left number is
// added to the nearest number to its left and its right number to the
// nearest number to its right (when such numbers exist).
//
// It returns t itself and false when no pair qualifies.
func Explode(t *Tree) (*Tree, bool) {
	next, _, _, ok := explode(t, 0)
	if !ok {
		return t, false
	}

	return next, true
}

// explode rewrites the subtree t found at depth. On success it returns the
// new subtree together with the two carries still waiting for a neighbour:
// the first goes to the nearest number left of t, the second to the nearest
// number right of t.
func explode(t *Tree, depth int) (*Tree, uint64, uint64, bool) {
	if t.IsLeaf() {
		return t, 0, 0, false
	}
	if depth >= ExplodeDepth && t.left.IsLeaf() && t.right.IsLeaf() {
		return Num(0), t.left.value, t.right.value, true
	}

	if nl, l, r, ok := explode(t.left, depth+1); ok {
		return Pair(nl, addLeftmost(t.right, r)), l, 0, true
	}
	if nr, l, r, ok := explode(t.right, depth+1); ok {
		return Pair(addRightmost(t.left, l), nr), 0, r, true
	}

	return t, 0, 0, false
}

// addLeftmost adds v to the leftmost number of t.
func addLeftmost(t *Tree, v uint64) *Tree {
	if v == 0 {
		return t
	}
	if t.IsLeaf() {
		return Num(t.value + v)
	}

	return Pair(addLeftmost(t.left, v), t.right)
}

// addRightmost adds v to the rightmost number of t.
func addRightmost(t *Tree, v uint64) *Tree {
	if v == 0 {
		return t
	}
	if t.IsLeaf() {
		return Num(t.value + v)
	}

	return Pair(t.left, addRightmost(t.right, v))
}

// Split replaces the leftmost number n ≥ SplitThreshold with
// [floor(n/2), ceil(n/2)]. It returns t itself and false when every
// number is below the threshold.
func Split(t *Tree) (*Tree, bool) {
	if t.IsLeaf() {
		if t.value < SplitThreshold {
			return t, false
		}

		return Pair(Num(t.value/2), Num(t.value-t.value/2)), true
	}
	if nl, ok := Split(t.left); ok {
		return Pair(nl, t.right), true
	}
	if nr, ok := Split(t.right); ok {
		return Pair(t.left, nr), true
	}

	return t, false
}

// Reduce rewrites t until it is reduced. Every explosion is applied before
// any split is considered, and after each split the explosions are retried.
func Reduce(t *Tree) *Tree {
	for {
		if next, ok := Explode(t); ok {
			t = next
			continue
		}
		if next, ok := Split(t); ok {
			t = next
			continue
		}

		return t
	}
}

// Add returns the reduced form of [a, b]. Neither operand is modified.
// Add panics if either operand is nil.
func Add(a, b *Tree) *Tree {
	return Reduce(Pair(a, b))
}

// Magnitude returns the value of a leaf, or 3×left + 2×right for a pair.
func Magnitude(t *Tree) uint64 {
	if t.IsLeaf() {
		return t.value
	}

	return 3*Magnitude(t.left) + 2*Magnitude(t.right)
}
