//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import "errors"

// the pipeline has no transient failure modes: nothing here is ever retried

var (
	// ErrLengthMismatch - the label count does not equal the document count
	ErrLengthMismatch = errors.New("label count does not match document count")

	// ErrEmptyCorpus - zero documents, or zero token types survive
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrCorrupt - an invariant violation (e.g. a negative count); fatal, the run aborts
	ErrCorrupt = errors.New("corrupt document-term matrix")
)
