//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

//
// HANDOFF FORMATS
//
// the modeling backends do not agree on an input shape: array-style backends
// want a dense matrix plus a vocabulary list; gensim-style backends want a
// bag-of-words iterable; james-bowman/nlp wants terms as rows
//

// BOW - one (type id, count) pair of a document's bag-of-words form
type BOW struct {
	TypeID int
	Count  int
}

// Dense - the matrix as a docs x types dense array aligned with its vocabulary
func (m *Matrix) Dense() (*mat.Dense, []string) {
	out := mat.NewDense(m.NumDocs(), m.NumTypes(), nil)
	m.doNonZero(func(d int, t int, v int) {
		out.Set(d, t, float64(v))
	})
	return out, m.Vocabulary()
}

// BagOfWords - per-document (type id, count) pairs, type ids ascending
func (m *Matrix) BagOfWords() [][]BOW {
	bags := make([][]BOW, m.NumDocs())
	m.doNonZero(func(d int, t int, v int) {
		bags[d] = append(bags[d], BOW{TypeID: t, Count: v})
	})
	// keep the contract independent of the storage mode's visit order
	for d := range bags {
		slices.SortFunc(bags[d], func(a BOW, b BOW) int { return a.TypeID - b.TypeID })
	}
	return bags
}

// FromBagOfWords - re-aggregate a bag-of-words corpus against a known vocabulary
func FromBagOfWords(bags [][]BOW, labels []string, vocab []string) (*Matrix, error) {
	const (
		MISMATCH = "%w: %d documents vs %d labels"
		NODOCS   = "%w: zero documents"
		NOTYPES  = "%w: zero token types"
		BADID    = "%w: type id %d outside vocabulary of %d"
	)

	if len(bags) != len(labels) {
		return nil, fmt.Errorf(MISMATCH, ErrLengthMismatch, len(bags), len(labels))
	}
	if len(bags) == 0 {
		return nil, fmt.Errorf(NODOCS, ErrEmptyCorpus)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf(NOTYPES, ErrEmptyCorpus)
	}

	ids := make(map[string]int, len(vocab))
	for t, tok := range vocab {
		ids[tok] = t
	}

	dok := sparse.NewDOK(len(bags), len(vocab))
	for d, bag := range bags {
		for _, b := range bag {
			if b.TypeID < 0 || b.TypeID >= len(vocab) {
				return nil, fmt.Errorf(BADID, ErrCorrupt, b.TypeID, len(vocab))
			}
			dok.Set(d, b.TypeID, dok.At(d, b.TypeID)+float64(b.Count))
		}
	}

	return &Matrix{
		labels: append([]string(nil), labels...),
		vocab:  append([]string(nil), vocab...),
		ids:    ids,
		mode:   Sparse,
		csr:    dok.ToCSR(),
	}, nil
}

// TermDocument - the matrix transposed into types x docs, the orientation
// the james-bowman/nlp estimators take their input in
func (m *Matrix) TermDocument() mat.Matrix {
	dok := sparse.NewDOK(m.NumTypes(), m.NumDocs())
	m.doNonZero(func(d int, t int, v int) {
		dok.Set(t, d, float64(v))
	})
	return dok.ToCSR()
}

// WriteCSV - the matrix as a labels x vocabulary table for eyeball inspection
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, m.vocab...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, m.NumTypes()+1)
	for d := 0; d < m.NumDocs(); d++ {
		row[0] = m.labels[d]
		for t := 0; t < m.NumTypes(); t++ {
			row[t+1] = strconv.Itoa(m.Count(d, t))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteMatrixMarket - the matrix in the MatrixMarket coordinate format that
// scipy and gensim read; indices are 1-based per that format
func (m *Matrix) WriteMatrixMarket(w io.Writer) error {
	const (
		BANNER = "%%MatrixMarket matrix coordinate integer general\n"
		COORD  = "%d %d %d\n"
	)

	nnz := 0
	m.doNonZero(func(d int, t int, v int) {
		nnz++
	})

	// not Fprintf: the banner's literal "%%" must survive to the file
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(BANNER); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, COORD, m.NumDocs(), m.NumTypes(), nnz); err != nil {
		return err
	}

	var werr error
	for d, bag := range m.BagOfWords() {
		for _, b := range bag {
			if _, err := fmt.Fprintf(bw, COORD, d+1, b.TypeID+1, b.Count); err != nil {
				werr = err
			}
		}
	}
	if werr != nil {
		return werr
	}

	return bw.Flush()
}
