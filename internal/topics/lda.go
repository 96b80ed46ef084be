//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"fmt"
	"runtime"

	"github.com/james-bowman/nlp"

	"github.com/dhgloss/topictools/internal/dtm"
)

//
// THE MODELING BACKEND
//
// the sampler itself belongs to github.com/james-bowman/nlp; this package
// feeds it a term-document matrix and reshapes what comes back into the
// document-topic and topic-key tables the downstream tooling consumes
//

// Model - the knobs the LatentDirichletAllocation backend exposes
type Model struct {
	Topics     int
	Iterations int
	Processes  int
}

// NewModel - a Model with the stock iteration and worker settings
func NewModel(k int) *Model {
	return &Model{
		Topics:     k,
		Iterations: 200,
		Processes:  runtime.NumCPU(),
	}
}

// Result - a fitted model reshaped into plain tables
type Result struct {
	labels     []string
	vocab      []string
	docTopics  [][]float64 // docs x topics; every row sums to 1
	topicWords [][]float64 // topics x types; unnormalized weights
}

// Fit - run the backend over a document-term matrix
func (m *Model) Fit(dt *dtm.Matrix) (*Result, error) {
	const (
		BADK   = "topic count must be positive, have %d"
		FAILED = "topic modeling failed: %w"
	)

	if m.Topics < 1 {
		return nil, fmt.Errorf(BADK, m.Topics)
	}

	if err := dt.Validate(); err != nil {
		return nil, err
	}

	lda := nlp.NewLatentDirichletAllocation(m.Topics)
	lda.Iterations = m.Iterations
	lda.Processes = m.Processes

	// the backend wants terms as rows and hands back topics x documents
	docsOverTopics, err := lda.FitTransform(dt.TermDocument())
	if err != nil {
		return nil, fmt.Errorf(FAILED, err)
	}

	ntopics, ndocs := docsOverTopics.Dims()

	dts := make([][]float64, ndocs)
	for d := 0; d < ndocs; d++ {
		row := make([]float64, ntopics)
		sum := 0.0
		for k := 0; k < ntopics; k++ {
			row[k] = docsOverTopics.At(k, d)
			sum += row[k]
		}
		// the handoff contract wants proper distributions: each row sums to 1
		if sum > 0 {
			for k := range row {
				row[k] /= sum
			}
		}
		dts[d] = row
	}

	topicsOverWords := lda.Components()
	_, ntypes := topicsOverWords.Dims()

	tws := make([][]float64, ntopics)
	for k := 0; k < ntopics; k++ {
		row := make([]float64, ntypes)
		for t := 0; t < ntypes; t++ {
			row[t] = topicsOverWords.At(k, t)
		}
		tws[k] = row
	}

	return &Result{
		labels:     dt.Labels(),
		vocab:      dt.Vocabulary(),
		docTopics:  dts,
		topicWords: tws,
	}, nil
}

// NumTopics - how many topics the model was fit with
func (r *Result) NumTopics() int {
	return len(r.topicWords)
}

// Labels - the document labels in row order
func (r *Result) Labels() []string {
	ll := make([]string, len(r.labels))
	copy(ll, r.labels)
	return ll
}
