//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedresult() *Result {
	return &Result{
		labels: []string{"doc1", "doc2"},
		vocab:  []string{"the", "cat", "sat", "dog"},
		docTopics: [][]float64{
			{0.75, 0.25},
			{0.10, 0.90},
		},
		topicWords: [][]float64{
			{4.0, 3.0, 2.0, 1.0},
			{1.0, 2.0, 2.0, 5.0},
		},
	}
}

func TestDocumentTopicsTable(t *testing.T) {
	r := fittedresult()

	dt := r.DocumentTopics()
	assert.Equal(t, []string{"doc1", "doc2"}, dt.Labels)
	require.Len(t, dt.Shares, 2)

	for d, row := range dt.Shares {
		sum := 0.0
		for _, s := range row {
			sum += s
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "document %d", d)
	}

	// the table is a copy, not a view of the model's state
	dt.Shares[0][0] = 99
	assert.Equal(t, 0.75, r.docTopics[0][0])
}

func TestTopicKeysRanking(t *testing.T) {
	r := fittedresult()

	tk := r.TopicKeys(2)
	require.Len(t, tk.Keys, 2)

	assert.Equal(t, "the", tk.Keys[0][0].Token)
	assert.Equal(t, "cat", tk.Keys[0][1].Token)

	// topic 1 ties "cat" and "sat" at 2.0; the lower type id wins
	assert.Equal(t, "dog", tk.Keys[1][0].Token)
	assert.Equal(t, "cat", tk.Keys[1][1].Token)
}

func TestTopicKeysClampsN(t *testing.T) {
	r := fittedresult()

	assert.Len(t, r.TopicKeys(100).Keys[0], len(r.vocab))
	assert.Empty(t, r.TopicKeys(0).Keys[0])
	assert.Empty(t, r.TopicKeys(-1).Keys[0])
}

func TestTopicLabels(t *testing.T) {
	r := fittedresult()

	ll := r.TopicKeys(3).TopicLabels(2)
	assert.Equal(t, []string{"the cat", "dog cat"}, ll)

	// asking for more keys than exist just joins what there is
	ll = r.TopicKeys(1).TopicLabels(5)
	assert.Equal(t, []string{"the", "dog"}, ll)
}

func TestDocumentTopicsWriteCSV(t *testing.T) {
	dt := &DocumentTopics{
		Labels: []string{"doc1"},
		Shares: [][]float64{{0.75, 0.25}},
	}

	var buf bytes.Buffer
	require.NoError(t, dt.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ",Topic 0,Topic 1", lines[0])
	assert.Equal(t, "doc1,0.750000,0.250000", lines[1])
}

func TestTopicKeysWriteCSV(t *testing.T) {
	tk := &TopicKeys{
		Keys: [][]KeyWeight{
			{{Token: "the", Weight: 4}, {Token: "cat", Weight: 3}},
			{{Token: "dog", Weight: 5}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, tk.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "topic,rank,key,weight", lines[0])
	assert.Equal(t, "0,0,the,4.000000", lines[1])
	assert.Equal(t, "0,1,cat,3.000000", lines[2])
	assert.Equal(t, "1,0,dog,5.000000", lines[3])
}
