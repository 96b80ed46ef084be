//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhgloss/topictools/internal/dtm"
)

func writedoc(t *testing.T, dir string, name string, content []byte) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, content, 0644))
	return fn
}

func TestReadCorpus(t *testing.T) {
	dir := t.TempDir()
	p1 := writedoc(t, dir, "goethe_1774_werther.txt", []byte("Wie froh bin ich"))
	p2 := writedoc(t, dir, "kafka_1915_verwandlung.txt", []byte("Als Gregor Samsa"))

	c, err := ReadCorpus([]string{p1, p2})
	require.NoError(t, err)
	require.Len(t, c.Docs, 2)

	assert.Equal(t, []string{"goethe_1774_werther", "kafka_1915_verwandlung"}, c.Labels())
	assert.Equal(t, []string{"Wie froh bin ich", "Als Gregor Samsa"}, c.Texts())
	assert.Equal(t, p1, c.Docs[0].ID)
}

func TestReadCorpusCollectsAllFailures(t *testing.T) {
	dir := t.TempDir()
	good := writedoc(t, dir, "good.txt", []byte("fine"))
	missing1 := filepath.Join(dir, "missing1.txt")
	missing2 := filepath.Join(dir, "missing2.txt")

	// every path is attempted; all failures come back at once; no partial corpus
	c, err := ReadCorpus([]string{missing1, good, missing2})
	assert.Nil(t, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.Contains(t, err.Error(), "missing1.txt")
	assert.Contains(t, err.Error(), "missing2.txt")
}

func TestReadCorpusEmpty(t *testing.T) {
	_, err := ReadCorpus(nil)
	assert.ErrorIs(t, err, dtm.ErrEmptyCorpus)
}

func TestReadCorpusHonorsBOMs(t *testing.T) {
	dir := t.TempDir()

	utf8bom := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	p1 := writedoc(t, dir, "utf8bom.txt", utf8bom)

	// "hi" in UTF-16 little-endian with its BOM
	utf16le := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	p2 := writedoc(t, dir, "utf16le.txt", utf16le)

	c, err := ReadCorpus([]string{p1, p2})
	require.NoError(t, err)
	assert.Equal(t, "hello", c.Docs[0].Text)
	assert.Equal(t, "hi", c.Docs[1].Text)
}

func TestGlobCorpusSorted(t *testing.T) {
	dir := t.TempDir()
	writedoc(t, dir, "b.txt", []byte("b"))
	writedoc(t, dir, "a.txt", []byte("a"))
	writedoc(t, dir, "c.md", []byte("c"))

	paths, err := GlobCorpus(dir, "*.txt")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a.txt", filepath.Base(paths[0]))
	assert.Equal(t, "b.txt", filepath.Base(paths[1]))
}

func TestGlobCorpusNoMatches(t *testing.T) {
	_, err := GlobCorpus(t.TempDir(), "*.txt")
	assert.ErrorIs(t, err, dtm.ErrEmptyCorpus)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "werther", Label("/corpus/werther.txt"))
	assert.Equal(t, "noext", Label("noext"))
	assert.Equal(t, "two.dots", Label("two.dots.txt"))
}

func TestParseMetadata(t *testing.T) {
	md, err := ParseMetadata("goethe_1774_werther", "{author}_{year}_{title}")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"author": "goethe",
		"year":   "1774",
		"title":  "werther",
	}, md)
}

func TestParseMetadataTitleKeepsSurplusUnderscores(t *testing.T) {
	md, err := ParseMetadata("goethe_1774_die_leiden_des_jungen_werther", "{author}_{year}_{title}")
	require.NoError(t, err)
	assert.Equal(t, "die_leiden_des_jungen_werther", md["title"])
}

func TestParseMetadataErrors(t *testing.T) {
	_, err := ParseMetadata("goethe_1774", "{author}_{year}_{title}")
	assert.Error(t, err)

	_, err = ParseMetadata("whatever", "no_fields_here")
	assert.Error(t, err)
}
