// Package edgelist reads and writes weighted edge list files, the on-disk
// graph format of the benchmark.
//
// Format
//
//	# Nodes: 45
//	# Edges: 990
//	# Density: 1.0
//	1 2 7
//	1 3 4
//	...
//
// One undirected edge per line as "u v weight", fields separated by any run of
// spaces or tabs. A '#' starts a comment that runs to the end of the line.
// Blank lines are ignored. Vertex IDs are opaque strings; weights are
// non-negative decimal numbers.
//
// Errors
//
//	ErrSyntax     a line without exactly three fields.
//	ErrBadWeight  a weight that does not parse as a number.
//
// Both are wrapped with the 1-based line number. Graph-level rejections
// (negative weight, loops, duplicate pairs) surface as the core sentinel
// errors, wrapped the same way.
package edgelist
