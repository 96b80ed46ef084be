//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

//
// POSTPROCESSING TABLES
//

// DocumentTopics - topic proportions per document: rows = documents,
// columns = topics, every row summing to 1
type DocumentTopics struct {
	Labels []string
	Shares [][]float64
}

// KeyWeight - one ranked key of a topic
type KeyWeight struct {
	Token  string
	Weight float64
}

// TopicKeys - the top keys of every topic, best first
type TopicKeys struct {
	Keys [][]KeyWeight
}

// DocumentTopics - the fitted document-topic distribution as a table
func (r *Result) DocumentTopics() *DocumentTopics {
	shares := make([][]float64, len(r.docTopics))
	for d := range r.docTopics {
		shares[d] = append([]float64(nil), r.docTopics[d]...)
	}
	return &DocumentTopics{Labels: r.Labels(), Shares: shares}
}

// TopicKeys - the n heaviest token types of each topic
//
// ranking argsorts the topic-word weights descending; equal weights fall back
// to type id order so reruns agree with each other
func (r *Result) TopicKeys(n int) *TopicKeys {
	if n < 0 {
		n = 0
	}

	keys := make([][]KeyWeight, len(r.topicWords))
	for k, weights := range r.topicWords {
		order := make([]int, len(weights))
		for t := range order {
			order[t] = t
		}
		slices.SortStableFunc(order, func(a int, b int) int {
			if weights[a] != weights[b] {
				if weights[b] > weights[a] {
					return 1
				}
				return -1
			}
			return a - b
		})

		top := n
		if top > len(order) {
			top = len(order)
		}

		kk := make([]KeyWeight, top)
		for i := 0; i < top; i++ {
			kk[i] = KeyWeight{Token: r.vocab[order[i]], Weight: weights[order[i]]}
		}
		keys[k] = kk
	}
	return &TopicKeys{Keys: keys}
}

// TopicLabels - short human-readable names for the topics: their top keys joined
func (tk *TopicKeys) TopicLabels(nkeys int) []string {
	ll := make([]string, len(tk.Keys))
	for k, kk := range tk.Keys {
		top := nkeys
		if top > len(kk) {
			top = len(kk)
		}
		words := make([]string, top)
		for i := 0; i < top; i++ {
			words[i] = kk[i].Token
		}
		ll[k] = strings.Join(words, " ")
	}
	return ll
}

// WriteCSV - rows = documents, columns = "Topic N" shares
func (dt *DocumentTopics) WriteCSV(w io.Writer) error {
	const (
		TOPIC = "Topic %d"
		PREC  = 6
	)

	cw := csv.NewWriter(w)

	ntopics := 0
	if len(dt.Shares) > 0 {
		ntopics = len(dt.Shares[0])
	}

	header := make([]string, ntopics+1)
	for k := 0; k < ntopics; k++ {
		header[k+1] = fmt.Sprintf(TOPIC, k)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, ntopics+1)
	for d := range dt.Shares {
		row[0] = dt.Labels[d]
		for k := 0; k < ntopics; k++ {
			row[k+1] = strconv.FormatFloat(dt.Shares[d][k], 'f', PREC, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSV - one row per (topic, rank): topic id, token, weight
func (tk *TopicKeys) WriteCSV(w io.Writer) error {
	const (
		PREC = 6
	)

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"topic", "rank", "key", "weight"}); err != nil {
		return err
	}

	for k, kk := range tk.Keys {
		for rank, key := range kk {
			rec := []string{
				strconv.Itoa(k),
				strconv.Itoa(rank),
				key.Token,
				strconv.FormatFloat(key.Weight, 'f', PREC, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
