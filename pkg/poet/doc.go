// Package poet builds a word affinity graph from a corpus and uses it to
// rewrite sentences by inserting bridge words.
//
// # Affinity Graph
//
// Vertices are words: tokens lower-cased with [strings.ToLower]. The weight
// of the edge w1→w2 counts how many times w1 is immediately followed by w2
// in the corpus. Given the corpus
//
//	Hello, HELLO, hello, goodbye!
//
// the graph holds two edges: "hello,"→"hello," with weight 2 and
// "hello,"→"goodbye!" with weight 1.
//
// # Bridge Words
//
// For adjacent input words w1 and w2, a bridge word b is any vertex with
// edges w1→b and b→w2 (compared case-insensitively). [Poet.Render] inserts
// the bridge with the greatest combined weight w1→b + b→w2. When several
// bridges share that weight, the lexicographically smallest word wins.
// Input words keep their original case; bridge words are lower case; words
// in the output are separated by single spaces.
//
// Given the corpus
//
//	This is a test of the Mugar Omni Theater sound system.
//
// the input "Test the system." renders as "Test of the system.".
//
// # Lifecycle
//
// A Poet is built once by [Build] and never mutated afterwards. Render,
// Bridge and Candidates only read the graph, so a ready Poet may be shared
// between goroutines.
package poet
