// Package snailfish implements arithmetic over snailfish numbers: immutable
// binary trees of non-negative integers that are kept "reduced" by two
// rewrite rules.
//
// What:
//
//   - Parse / ParseAll read the grammar  pair := NUMBER | '[' pair ',' pair ']'.
//   - Explode removes the leftmost pair of two numbers nested inside four
//     pairs; its left value is added to the nearest number on its left, its
//     right value to the nearest number on its right, and it becomes 0.
//   - Split replaces the leftmost number ≥ 10 with [floor(n/2), ceil(n/2)].
//   - Reduce applies Explode until none is possible, then a single Split,
//     and starts over, until neither rule applies. Explosions always take
//     priority; this ordering is what makes the result deterministic.
//   - Add(a, b) reduces [a, b]. It is not associative, so Sum folds strictly
//     left to right.
//   - Magnitude is 3×left + 2×right, recursively; a number is its own magnitude.
//   - MaxPairwiseMagnitude searches every ordered pair of distinct inputs on
//     a bounded worker pool.
//
// Trees are never mutated. Explode, Split, Reduce and Add return new trees
// that share untouched subtrees with their inputs, so the same input tree
// can be combined with many others, concurrently, without copying.
//
// Complexity (L = leaves):
//
//   - Parse:              O(len(s)).
//   - Explode, Split:     O(L) per step.
//   - Reduce:             O(L) per step; steps are bounded because explosions
//     shrink nesting and splits shrink the count of numbers ≥ 10.
//   - MaxPairwiseMagnitude: O(n²) additions spread over the workers.
//
// Errors:
//
//   - ErrSyntax (wrapped by *ParseError): malformed input.
//   - ErrEmptyInput:      ParseAll found no tree.
//   - ErrNilTree:         a nil tree passed to MaxPairwiseMagnitude.
//   - ErrOptionViolation: invalid Option (e.g. negative worker count).
package snailfish
