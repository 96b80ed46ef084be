//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhgloss/topictools/internal/dtm"
)

func twodocs(t *testing.T) *dtm.Matrix {
	m, err := dtm.NewDense(
		[][]string{{"the", "cat", "sat"}, {"the", "dog", "sat"}},
		[]string{"doc1", "doc2"},
	)
	require.NoError(t, err)
	return m
}

func TestFindStopwordsBreaksTiesByFirstOccurrence(t *testing.T) {
	m := twodocs(t)

	// "the" and "sat" both occur twice; "the" entered the vocabulary first
	assert.Equal(t, []string{"the"}, FindStopwords(m, 1))
	assert.Equal(t, []string{"the", "sat"}, FindStopwords(m, 2))
	assert.Equal(t, []string{"the", "sat", "cat", "dog"}, FindStopwords(m, 4))
}

func TestFindStopwordsClampsK(t *testing.T) {
	m := twodocs(t)

	assert.Empty(t, FindStopwords(m, 0))
	assert.Empty(t, FindStopwords(m, -3))
	assert.Len(t, FindStopwords(m, 100), m.NumTypes())
}

func TestFindHapaxLegomena(t *testing.T) {
	m := twodocs(t)

	// count == 1 exactly, reported in type id order
	assert.Equal(t, []string{"cat", "dog"}, FindHapaxLegomena(m))
}

func TestCombine(t *testing.T) {
	union := Combine(
		[]string{"the", "sat"},
		[]string{"cat", "the"},
		nil,
		[]string{"dog", "cat"},
	)
	assert.Equal(t, []string{"the", "sat", "cat", "dog"}, union)

	assert.Empty(t, Combine())
	assert.Empty(t, Combine(nil, nil))
}

func TestRemoveFeatures(t *testing.T) {
	m := twodocs(t)

	pruned, err := RemoveFeatures([]string{"the", "sat", "never-seen"}, m)
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "dog"}, pruned.Vocabulary())
	assert.Equal(t, m.Labels(), pruned.Labels())

	// the input matrix is left alone
	assert.Equal(t, 4, m.NumTypes())

	// removal is idempotent
	again, err := RemoveFeatures([]string{"the", "sat"}, pruned)
	require.NoError(t, err)
	assert.Equal(t, pruned.Vocabulary(), again.Vocabulary())
}

func TestBuiltinStopwords(t *testing.T) {
	en := BuiltinStopwords("english")
	assert.Contains(t, en, "the")
	assert.Contains(t, BuiltinStopwords("german"), "und")
	assert.Nil(t, BuiltinStopwords("klingon"))

	// callers get their own copy
	en[0] = "mutated"
	assert.Equal(t, "the", English100[0])
}

func TestRemoveFeaturesEverythingFails(t *testing.T) {
	m := twodocs(t)

	_, err := RemoveFeatures(FindStopwords(m, m.NumTypes()), m)
	assert.ErrorIs(t, err, dtm.ErrEmptyCorpus)
}
