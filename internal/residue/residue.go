package residue

// Package residue holds the per-amino-acid reference constants used by the
// composition engine: nitrogen, carbon and sulfur atom counts plus the
// average molecular weight of the free amino acid. The table is fixed at
// compile time and never mutated.

import "sort"

// Constant describes one standard amino acid.
type Constant struct {
	N    uint    // nitrogen atoms
	C    uint    // carbon atoms
	S    uint    // sulfur atoms
	Mass float64 // average molecular weight (g/mol)
}

// table covers exactly the 20 standard one-letter codes. Atom counts follow
// the NCBI amino acid composition tables; masses are average molecular
// weights of the free amino acids.
var table = map[rune]Constant{
	'A': {N: 1, C: 3, S: 0, Mass: 89.09},
	'R': {N: 4, C: 6, S: 0, Mass: 174.20},
	'N': {N: 2, C: 4, S: 0, Mass: 132.12},
	'D': {N: 1, C: 4, S: 0, Mass: 133.10},
	'C': {N: 1, C: 3, S: 1, Mass: 121.16},
	'E': {N: 1, C: 5, S: 0, Mass: 147.13},
	'Q': {N: 2, C: 5, S: 0, Mass: 146.15},
	'G': {N: 1, C: 2, S: 0, Mass: 75.07},
	'H': {N: 3, C: 6, S: 0, Mass: 155.15},
	'I': {N: 1, C: 6, S: 0, Mass: 131.17},
	'L': {N: 1, C: 6, S: 0, Mass: 131.17},
	'K': {N: 2, C: 6, S: 0, Mass: 146.19},
	'M': {N: 1, C: 5, S: 1, Mass: 149.21},
	'F': {N: 1, C: 9, S: 0, Mass: 165.19},
	'P': {N: 1, C: 5, S: 0, Mass: 115.13},
	'S': {N: 1, C: 3, S: 0, Mass: 105.09},
	'T': {N: 1, C: 4, S: 0, Mass: 119.12},
	'W': {N: 2, C: 11, S: 0, Mass: 204.23},
	'Y': {N: 1, C: 9, S: 0, Mass: 181.19},
	'V': {N: 1, C: 5, S: 0, Mass: 117.15},
}

// Lookup returns the constants for a one-letter code. The second return is
// false for anything outside the 20 standard codes (ambiguity codes, stop
// markers, gaps); callers decide how to treat those.
func Lookup(code rune) (Constant, bool) {
	c, ok := table[code]
	return c, ok
}

// Codes returns the 20 standard one-letter codes in sorted order, for stable
// column layouts in extended output.
func Codes() []rune {
	codes := make([]rune, 0, len(table))
	for c := range table {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
