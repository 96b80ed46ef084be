//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writemallet(t *testing.T, name string, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	return fn
}

func TestReadMalletDocumentTopicsPaired(t *testing.T) {
	content := "#doc name topic proportion ...\n" +
		"0\tfile:/corpus/goethe_1774_werther.txt\t1\t0.7\t0\t0.3\n" +
		"1\tfile:/corpus/kafka_1915_verwandlung.txt\t0\t0.6\t1\t0.4\n"
	fn := writemallet(t, "doctopics.txt", content)

	dt, err := ReadMalletDocumentTopics(fn)
	require.NoError(t, err)

	assert.Equal(t, []string{"goethe_1774_werther", "kafka_1915_verwandlung"}, dt.Labels)
	// pairs are reordered by their topic column
	assert.Equal(t, []float64{0.3, 0.7}, dt.Shares[0])
	assert.Equal(t, []float64{0.6, 0.4}, dt.Shares[1])
}

func TestReadMalletDocumentTopicsEasy(t *testing.T) {
	content := "0\tgoethe_1774_werther.txt\t0.3\t0.7\n" +
		"1\tkafka_1915_verwandlung.txt\t0.6\t0.4\n"
	fn := writemallet(t, "doctopics.txt", content)

	dt, err := ReadMalletDocumentTopics(fn)
	require.NoError(t, err)

	assert.Equal(t, []string{"goethe_1774_werther", "kafka_1915_verwandlung"}, dt.Labels)
	assert.Equal(t, []float64{0.3, 0.7}, dt.Shares[0])
	assert.Equal(t, []float64{0.6, 0.4}, dt.Shares[1])
}

func TestReadMalletDocumentTopicsMalformed(t *testing.T) {
	fn := writemallet(t, "doctopics.txt", "0\tjust-two-fields\n")
	_, err := ReadMalletDocumentTopics(fn)
	assert.Error(t, err)

	fn = writemallet(t, "doctopics2.txt", "#header\n0\tdoc.txt\t1\t0.7\t0\n")
	_, err = ReadMalletDocumentTopics(fn)
	assert.Error(t, err)
}

func TestReadMalletTopicKeys(t *testing.T) {
	content := "0\t0.5\tthe cat sat\n" +
		"1\t0.5\tdog mat\n"
	fn := writemallet(t, "keys.txt", content)

	keys, err := ReadMalletTopicKeys(fn)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, []string{"the", "cat", "sat"}, keys[0])
	assert.Equal(t, []string{"dog", "mat"}, keys[1])
}

func TestReadMalletTopicKeysMalformed(t *testing.T) {
	fn := writemallet(t, "keys.txt", "0\tno-keys-column\n")
	_, err := ReadMalletTopicKeys(fn)
	assert.Error(t, err)
}

func TestReadMalletWordWeights(t *testing.T) {
	content := "0\tthe\t4.0\n" +
		"0\tcat\t9.0\n" +
		"1\tdog\t6.5\n"
	fn := writemallet(t, "weights.txt", content)

	ww, err := ReadMalletWordWeights(fn, 2)
	require.NoError(t, err)
	require.Len(t, ww, 2)

	// heaviest first, trimmed to n
	assert.Equal(t, WordWeight{Topic: 0, Token: "cat", Weight: 9.0}, ww[0])
	assert.Equal(t, WordWeight{Topic: 1, Token: "dog", Weight: 6.5}, ww[1])

	all, err := ReadMalletWordWeights(fn, -1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
