//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

//
// THE DOCUMENT-TERM MATRIX
//
// rows = documents, columns = token types, cells = term frequencies
// a cell that was never set is an implicit zero
//

// Mode - the storage strategy behind a Matrix
type Mode int

const (
	Dense Mode = iota
	Sparse
)

func (m Mode) String() string {
	if m == Dense {
		return "dense"
	}
	return "sparse"
}

// Matrix - a document-term matrix plus its two index mappings
//
// the vocabulary lives here as explicit state, not in a process-wide dictionary:
// every derived Matrix carries its own (id -> label) and (id -> token) tables
type Matrix struct {
	labels []string       // document id -> label
	vocab  []string       // type id -> surface form
	ids    map[string]int // surface form -> type id
	mode   Mode
	dense  *mat.Dense  // non-nil iff mode == Dense
	csr    *sparse.CSR // non-nil iff mode == Sparse
}

// NumDocs - the row count
func (m *Matrix) NumDocs() int {
	return len(m.labels)
}

// NumTypes - the column count
func (m *Matrix) NumTypes() int {
	return len(m.vocab)
}

// Mode - dense or sparse storage; the public contract is identical either way
func (m *Matrix) Mode() Mode {
	return m.mode
}

// Count - the term frequency of type t in document d
func (m *Matrix) Count(d int, t int) int {
	if m.mode == Dense {
		return int(m.dense.At(d, t))
	}
	return int(m.csr.At(d, t))
}

// Label - the label of document d
func (m *Matrix) Label(d int) string {
	return m.labels[d]
}

// Token - the surface form of type t
func (m *Matrix) Token(t int) string {
	return m.vocab[t]
}

// TypeID - the id assigned to a surface form, if it is in the matrix at all
func (m *Matrix) TypeID(token string) (int, bool) {
	id, ok := m.ids[token]
	return id, ok
}

// Labels - a copy of the document index in row order
func (m *Matrix) Labels() []string {
	ll := make([]string, len(m.labels))
	copy(ll, m.labels)
	return ll
}

// Vocabulary - a copy of the type index in column order
func (m *Matrix) Vocabulary() []string {
	vv := make([]string, len(m.vocab))
	copy(vv, m.vocab)
	return vv
}

// RowTotals - the token count of each document
func (m *Matrix) RowTotals() []int {
	totals := make([]int, m.NumDocs())
	m.doNonZero(func(d int, t int, v int) {
		totals[d] += v
	})
	return totals
}

// ColumnTotals - the corpus-wide count of each type
func (m *Matrix) ColumnTotals() []int {
	totals := make([]int, m.NumTypes())
	m.doNonZero(func(d int, t int, v int) {
		totals[t] += v
	})
	return totals
}

// Total - the sum of all cells; equals the token count of the whole corpus
func (m *Matrix) Total() int {
	sum := 0
	m.doNonZero(func(d int, t int, v int) {
		sum += v
	})
	return sum
}

// Validate - a detected invariant violation is fatal, not something to patch over
func (m *Matrix) Validate() error {
	const (
		BAD = "%w: negative count %d at (%d, %d)"
	)
	var err error
	m.doNonZero(func(d int, t int, v int) {
		if v < 0 && err == nil {
			err = fmt.Errorf(BAD, ErrCorrupt, v, d, t)
		}
	})
	return err
}

// DropTypes - a new Matrix without the named columns; the callers' Matrix is untouched
//
// names that are not in the vocabulary are silently ignored; the rows and their
// order always survive, as does the relative order of the remaining columns
func (m *Matrix) DropTypes(names []string) (*Matrix, error) {
	const (
		EMPTY = "%w: no token types survive feature removal"
	)

	doomed := make(map[int]bool, len(names))
	for _, n := range names {
		if id, ok := m.ids[n]; ok {
			doomed[id] = true
		}
	}

	keep := make([]int, 0, m.NumTypes()-len(doomed))
	for t := 0; t < m.NumTypes(); t++ {
		if !doomed[t] {
			keep = append(keep, t)
		}
	}

	if len(keep) == 0 {
		return nil, fmt.Errorf(EMPTY, ErrEmptyCorpus)
	}

	vocab := make([]string, len(keep))
	ids := make(map[string]int, len(keep))
	remap := make(map[int]int, len(keep))
	for newid, oldid := range keep {
		vocab[newid] = m.vocab[oldid]
		ids[vocab[newid]] = newid
		remap[oldid] = newid
	}

	next := &Matrix{
		labels: m.Labels(),
		vocab:  vocab,
		ids:    ids,
		mode:   m.mode,
	}

	if m.mode == Dense {
		next.dense = mat.NewDense(m.NumDocs(), len(keep), nil)
		for d := 0; d < m.NumDocs(); d++ {
			for newid, oldid := range keep {
				next.dense.Set(d, newid, m.dense.At(d, oldid))
			}
		}
		return next, nil
	}

	dok := sparse.NewDOK(m.NumDocs(), len(keep))
	m.csr.DoNonZero(func(d int, t int, v float64) {
		if newid, ok := remap[t]; ok {
			dok.Set(d, newid, v)
		}
	})
	next.csr = dok.ToCSR()
	return next, nil
}

// doNonZero - visit every set cell; the DOK/CSR path skips the implicit zeroes
func (m *Matrix) doNonZero(fn func(d int, t int, v int)) {
	if m.mode == Sparse {
		m.csr.DoNonZero(func(i int, j int, v float64) {
			fn(i, j, int(v))
		})
		return
	}
	r, c := m.dense.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.dense.At(i, j); v != 0 {
				fn(i, j, int(v))
			}
		}
	}
}
