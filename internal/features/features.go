//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package features

import (
	"slices"

	"github.com/dhgloss/topictools/internal/dtm"
)

//
// FEATURE SELECTION
//
// two derived token sets matter before modeling: the most frequent types
// (candidate stopwords) and the types seen exactly once corpus-wide (hapax
// legomena); their union with any external list is what gets removed
//
// nothing here mutates its input: each call hands back a fresh value so the
// caller can chain removals and inspect the intermediate states
//

// FindStopwords - the k types with the highest corpus-wide counts
//
// ties at the cutoff break by first-occurrence order (ascending type id), so
// the answer never depends on map iteration order: for "the cat sat"/"the dog
// sat" and k=1 the winner is "the", which entered the vocabulary before "sat"
func FindStopwords(m *dtm.Matrix, k int) []string {
	totals := m.ColumnTotals()

	order := make([]int, len(totals))
	for t := range order {
		order[t] = t
	}
	slices.SortStableFunc(order, func(a int, b int) int {
		if totals[a] != totals[b] {
			return totals[b] - totals[a]
		}
		return a - b
	})

	if k > len(order) {
		k = len(order)
	}
	if k < 0 {
		k = 0
	}

	stops := make([]string, k)
	for i := 0; i < k; i++ {
		stops[i] = m.Token(order[i])
	}
	return stops
}

// FindHapaxLegomena - every type whose corpus-wide count is exactly 1, in id order
func FindHapaxLegomena(m *dtm.Matrix) []string {
	var hapax []string
	for t, total := range m.ColumnTotals() {
		if total == 1 {
			hapax = append(hapax, m.Token(t))
		}
	}
	return hapax
}

// Combine - union several feature lists, first appearance wins, duplicates collapse
func Combine(lists ...[]string) []string {
	seen := make(map[string]bool)
	var union []string
	for _, list := range lists {
		for _, f := range list {
			if !seen[f] {
				seen[f] = true
				union = append(union, f)
			}
		}
	}
	return union
}

// RemoveFeatures - a new matrix with the named columns dropped outright
//
// names absent from the matrix are silently ignored; rows and their order are
// untouched; applying the same list twice gives the same matrix as once
func RemoveFeatures(list []string, m *dtm.Matrix) (*dtm.Matrix, error) {
	return m.DropTypes(list)
}
