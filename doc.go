// Package tree23 implements an in-memory 2-3 tree: a balanced ordered
// map from scalar keys to values with guaranteed O(log n) insert, delete
// and lookup. Nodes hold either one element and two children (a 2-node)
// or two elements and three children (a 3-node); every leaf sits at the
// same depth, so no rotations are ever needed.
//
// There are no parent pointers. Rebalancing after a mutation travels back
// up the recursive call chain instead: inserts bubble node splits upward
// through return values, deletes bubble empty-node holes upward through a
// traversal state shared by the whole call stack. Each node is owned by
// exactly one parent slot, which is what makes the recursive mutation
// safe.
//
// An individual Map is not safe for concurrent mutation, so either access
// it from a single goroutine or guard it with a mutex.
//
// Keys are expected to be unique. Insert does not check for duplicates:
// inserting a key that is already present leaves two elements with equal
// keys in the tree, and which of them Find or Delete reaches first is
// unspecified.
package tree23
