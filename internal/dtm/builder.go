//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"fmt"
	"slices"
	"sync"

	"github.com/james-bowman/sparse"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/mat"
)

//
// MATRIX CONSTRUCTION
//
// type ids are handed out in order of first occurrence across the corpus scan;
// that ordering is part of the public contract: it is what makes stopword
// tie-breaking and column order deterministic run over run
//

// NewDense - build an in-memory dense matrix; the right choice for a small corpus
func NewDense(tokenized [][]string, labels []string) (*Matrix, error) {
	vocab, ids, err := scanvocab(tokenized, labels)
	if err != nil {
		return nil, err
	}

	m := &Matrix{
		labels: append([]string(nil), labels...),
		vocab:  vocab,
		ids:    ids,
		mode:   Dense,
		dense:  mat.NewDense(len(tokenized), len(vocab), nil),
	}

	for d := 0; d < len(tokenized); d++ {
		for _, tok := range tokenized[d] {
			t := ids[tok]
			m.dense.Set(d, t, m.dense.At(d, t)+1)
		}
	}

	return m, nil
}

// NewSparse - build a compressed sparse row matrix; the right choice for a large corpus
func NewSparse(tokenized [][]string, labels []string) (*Matrix, error) {
	return NewSparseParallel(tokenized, labels, 1)
}

// NewSparseParallel - NewSparse with the per-document counting sharded over workers
//
// counting is embarrassingly parallel over documents and the merge walks the
// documents in row order, so the result is identical for any worker count
func NewSparseParallel(tokenized [][]string, labels []string, workers int) (*Matrix, error) {
	vocab, ids, err := scanvocab(tokenized, labels)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}

	// each document reduces to its own (type id -> count) table...
	counts := make([]map[int]int, len(tokenized))

	var wg sync.WaitGroup
	feeder := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range feeder {
				cc := make(map[int]int)
				for _, tok := range tokenized[d] {
					cc[ids[tok]]++
				}
				counts[d] = cc
			}
		}()
	}

	for d := 0; d < len(tokenized); d++ {
		feeder <- d
	}
	close(feeder)
	wg.Wait()

	// ...and the tables merge in document order, one writer, no races
	dok := sparse.NewDOK(len(tokenized), len(vocab))
	for d := 0; d < len(counts); d++ {
		tt := maps.Keys(counts[d])
		slices.Sort(tt)
		for _, t := range tt {
			dok.Set(d, t, float64(counts[d][t]))
		}
	}

	return &Matrix{
		labels: append([]string(nil), labels...),
		vocab:  vocab,
		ids:    ids,
		mode:   Sparse,
		csr:    dok.ToCSR(),
	}, nil
}

// scanvocab - one serial pass over the corpus assigning type ids by first occurrence
func scanvocab(tokenized [][]string, labels []string) ([]string, map[string]int, error) {
	const (
		MISMATCH = "%w: %d documents vs %d labels"
		NODOCS   = "%w: the corpus holds no documents"
		NOTYPES  = "%w: the corpus holds no tokens"
	)

	if len(tokenized) != len(labels) {
		return nil, nil, fmt.Errorf(MISMATCH, ErrLengthMismatch, len(tokenized), len(labels))
	}

	if len(tokenized) == 0 {
		return nil, nil, fmt.Errorf(NODOCS, ErrEmptyCorpus)
	}

	var vocab []string
	ids := make(map[string]int)

	for d := 0; d < len(tokenized); d++ {
		for _, tok := range tokenized[d] {
			if _, seen := ids[tok]; !seen {
				ids[tok] = len(vocab)
				vocab = append(vocab, tok)
			}
		}
	}

	if len(vocab) == 0 {
		return nil, nil, fmt.Errorf(NOTYPES, ErrEmptyCorpus)
	}

	return vocab, ids, nil
}
