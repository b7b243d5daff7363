package snailfish

import (
	"strconv"
	"strings"
)

// Tree is an immutable snailfish number: either a regular number (leaf) or
// a pair of two trees. The zero value is the number 0.
type Tree struct {
	left, right *Tree
	value       uint64
}

// Num returns a leaf holding n.
func Num(n uint64) *Tree {
	return &Tree{value: n}
}

// Pair returns the pair [l, r]. It panics if either side is nil.
func Pair(l, r *Tree) *Tree {
	if l == nil || r == nil {
		panic("snailfish: Pair with nil side")
	}

	return &Tree{left: l, right: r}
}

// IsLeaf reports whether t is a regular number.
func (t *Tree) IsLeaf() bool {
	return t.left == nil
}

// Value returns the number held by a leaf; pairs report 0.
func (t *Tree) Value() uint64 {
	return t.value
}

// Left returns the left side of a pair, or nil for a leaf.
func (t *Tree) Left() *Tree {
	return t.left
}

// Right returns the right side of a pair, or nil for a leaf.
func (t *Tree) Right() *Tree {
	return t.right
}

// Depth returns how many pairs deep the tree nests: 0 for a number,
// 1 for [a,b] of numbers, and so on.
func (t *Tree) Depth() int {
	if t.IsLeaf() {
		return 0
	}

	return 1 + max(t.left.Depth(), t.right.Depth())
}

// Equal reports whether t and o have the same shape and numbers.
func (t *Tree) Equal(o *Tree) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || t.IsLeaf() != o.IsLeaf() {
		return false
	}
	if t.IsLeaf() {
		return t.value == o.value
	}

	return t.left.Equal(o.left) && t.right.Equal(o.right)
}

// String renders t in the input grammar, e.g. "[[1,2],3]".
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb)

	return sb.String()
}

func (t *Tree) write(sb *strings.Builder) {
	if t.IsLeaf() {
		sb.WriteString(strconv.FormatUint(t.value, 10))
		return
	}
	sb.WriteByte('[')
	t.left.write(sb)
	sb.WriteByte(',')
	t.right.write(sb)
	sb.WriteByte(']')
}

// IsReduced reports whether neither rewrite rule applies to t:
// no pair is nested inside four pairs and no number is 10 or more.
func IsReduced(t *Tree) bool {
	return t.Depth() <= ExplodeDepth && !hasSplittable(t)
}

func hasSplittable(t *Tree) bool {
	if t.IsLeaf() {
		return t.value >= SplitThreshold
	}

	return hasSplittable(t.left) || hasSplittable(t.right)
}
