// Package disjointset implements a union-find structure over a fixed universe of
// vertex IDs, as used by Kruskal's algorithm.
//
// Elements are addressed by their position in the slice given to New; sets are
// labelled by the index of their root. Find always compresses the whole path it
// walks, so every node it visits ends up pointing directly at the root. Merge
// unions by rank: the lower-rank root is attached under the higher-rank one, and
// on a tie b is attached under a and a's rank grows by one.
//
// Complexity:
//
//   - New:   O(n)
//   - Find:  amortized O(α(n))
//   - Merge: O(1)
//
// A DisjointSet is owned by a single MST run and is not safe for concurrent use.
package disjointset
