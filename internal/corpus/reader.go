//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dhgloss/topictools/internal/dtm"
)

// ErrUnreadable - a document could not be opened or decoded as text
var ErrUnreadable = errors.New("unreadable document")

// Document - one member of the corpus: a stable key plus its decoded text
type Document struct {
	ID    string // the source path
	Label string // basename with the extension dropped
	Text  string
}

// Corpus - the documents in the order their identifiers were supplied
type Corpus struct {
	Docs []Document
}

// Labels - the row identifiers the document-term matrix will carry
func (c *Corpus) Labels() []string {
	ll := make([]string, len(c.Docs))
	for i, d := range c.Docs {
		ll[i] = d.Label
	}
	return ll
}

// Texts - the raw contents in document order
func (c *Corpus) Texts() []string {
	tt := make([]string, len(c.Docs))
	for i, d := range c.Docs {
		tt[i] = d.Text
	}
	return tt
}

// ReadCorpus - map an ordered list of paths to their decoded contents
//
// the policy is collect-and-raise: every path is attempted, and all failures
// come back joined into a single error so one bad file does not mask the rest;
// on any failure no partial corpus is returned
func ReadCorpus(paths []string) (*Corpus, error) {
	const (
		NONE = "%w: no document identifiers supplied"
	)

	if len(paths) == 0 {
		return nil, fmt.Errorf(NONE, dtm.ErrEmptyCorpus)
	}

	c := &Corpus{Docs: make([]Document, 0, len(paths))}

	var failures []error
	for _, p := range paths {
		text, err := readone(p)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		c.Docs = append(c.Docs, Document{ID: p, Label: Label(p), Text: text})
	}

	if len(failures) != 0 {
		return nil, errors.Join(failures...)
	}

	return c, nil
}

// GlobCorpus - the matching paths under dir in sorted (therefore reproducible) order
func GlobCorpus(dir string, pattern string) ([]string, error) {
	const (
		NOPE = "%w: nothing in '%s' matches '%s'"
	)

	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf(NOPE, dtm.ErrEmptyCorpus, dir, pattern)
	}

	slices.Sort(paths)
	return paths, nil
}

// Label - derive the document label from its path: basename minus extension
func Label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readone - open, decode, close; the handle is released on every exit path
func readone(path string) (string, error) {
	const (
		FAIL = "%w '%s': %v"
		NVAL = "not valid text"
	)

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf(FAIL, ErrUnreadable, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	// honor UTF-16/UTF-8 byte order marks; plain UTF-8 passes through untouched
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	raw, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", fmt.Errorf(FAIL, ErrUnreadable, path, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf(FAIL, ErrUnreadable, path, errors.New(NVAL))
	}

	return string(raw), nil
}
