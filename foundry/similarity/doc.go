/*
Package similarity provides text similarity scoring and normalization
utilities following the Fulmen Helper Library Standard (2025.10.2).

# Text Similarity

The package implements Levenshtein distance calculation using the
Wagner-Fischer dynamic programming algorithm with Unicode-aware character
counting.

Distance returns the edit distance between two strings:

	dist := similarity.Distance("kitten", "sitting") // Returns: 3

Score returns a normalized similarity score from 0.0 (different) to 1.0
(identical):

	score := similarity.Score("kitten", "sitting") // Returns: 0.5714...

# Normalization

Unicode-aware text normalization with optional accent stripping:

	opts := similarity.NormalizeOptions{StripAccents: true}
	normalized := similarity.Normalize("  Café  ", opts) // Returns: "cafe"

Specialized normalization functions:

	folded := similarity.Casefold("Hello", "")                   // Returns: "hello"
	stripped := similarity.StripAccents("naïve")                 // Returns: "naive"
	equal := similarity.EqualsIgnoreCase("Hello", "HELLO", opts) // Returns: true

# Conformance

Standard: Crucible Foundry Similarity Standard v1.0.0 (2025.10.2)
Module: docstruct/foundry (forked from gofulmen/foundry)
*/
package similarity
