//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhgloss/topictools/internal/dtm"
)

// the sampler is randomized, so only shape and distribution properties are
// asserted here, never specific topic assignments

func TestModelFit(t *testing.T) {
	tokenized := [][]string{
		{"cat", "cat", "mouse", "mouse", "whiskers"},
		{"cat", "mouse", "whiskers", "whiskers"},
		{"stock", "stock", "market", "trade"},
		{"market", "trade", "trade", "stock"},
	}
	labels := []string{"cats1", "cats2", "finance1", "finance2"}

	m, err := dtm.NewDense(tokenized, labels)
	require.NoError(t, err)

	model := NewModel(2)
	model.Iterations = 50
	model.Processes = 1

	res, err := model.Fit(m)
	require.NoError(t, err)

	assert.Equal(t, 2, res.NumTopics())
	assert.Equal(t, labels, res.Labels())

	dt := res.DocumentTopics()
	require.Len(t, dt.Shares, 4)
	for d, row := range dt.Shares {
		require.Len(t, row, 2)
		sum := 0.0
		for _, s := range row {
			assert.GreaterOrEqual(t, s, 0.0)
			sum += s
		}
		assert.InDelta(t, 1.0, sum, 1e-6, "document %d", d)
	}

	tk := res.TopicKeys(3)
	require.Len(t, tk.Keys, 2)
	for _, kk := range tk.Keys {
		assert.Len(t, kk, 3)
		for i := 1; i < len(kk); i++ {
			assert.LessOrEqual(t, kk[i].Weight, kk[i-1].Weight)
		}
	}
}

func TestModelFitRejectsBadInput(t *testing.T) {
	m, err := dtm.NewDense([][]string{{"one", "two"}}, []string{"doc"})
	require.NoError(t, err)

	model := NewModel(0)
	_, err = model.Fit(m)
	assert.Error(t, err)
}
