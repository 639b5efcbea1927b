// Package pkg provides the libraries behind wordbridge.
//
// # Overview
//
// Wordbridge learns word adjacencies from a text corpus and rewrites
// sentences by inserting the word that most strongly links each pair of
// adjacent words. The pkg directory is organized as:
//
//  1. [digraph] - Weighted directed graph with labeled vertices
//  2. [corpus] - Whitespace tokenizer for corpus files
//  3. [poet] - Affinity graph construction and bridge-word rendering
//  4. [render] - DOT, SVG, PDF and PNG drawings of an affinity graph
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	corpus files
//	     ↓
//	[corpus] package (tokens)
//	     ↓
//	[poet] package (affinity graph built on [digraph])
//	     ↓
//	Render(input) → output, or [render/nodelink] → DOT/SVG
//
// # Quick Start
//
//	tokens, err := corpus.ReadFiles("poems.txt")
//	if err != nil {
//	    return err
//	}
//	p := poet.FromTokens(tokens)
//	fmt.Println(p.Render("Test the system."))
//
// [digraph]: github.com/matzehuels/wordbridge/pkg/digraph
// [corpus]: github.com/matzehuels/wordbridge/pkg/corpus
// [poet]: github.com/matzehuels/wordbridge/pkg/poet
// [render]: github.com/matzehuels/wordbridge/pkg/render
// [render/nodelink]: github.com/matzehuels/wordbridge/pkg/render/nodelink
// [errors]: github.com/matzehuels/wordbridge/pkg/errors
// [observability]: github.com/matzehuels/wordbridge/pkg/observability
// [buildinfo]: github.com/matzehuels/wordbridge/pkg/buildinfo
package pkg
