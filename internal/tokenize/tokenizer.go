//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tokenize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/dhgloss/topictools/internal/vv"
)

//
// TOKENIZATION
//
// splitting follows the Unicode word boundary rules (UAX #29) rather than a
// whitespace regex: "l'homme" and "καὶ—δὴ" come apart the way a reader would
// expect them to; segments with no letter or digit in them are discarded
//
// tokens keep their original casing and diacritics: folding them is a
// modeling decision that belongs to the caller, not the tokenizer
//

// Each - walk the tokens of a text in order; return false from fn to stop early
//
// the walk restarts from the top on every call: Each is a pure function of its
// input and holds no state between calls
func Each(text string, fn func(token string) bool) {
	state := -1
	var tok string
	for len(text) > 0 {
		tok, text, state = uniseg.FirstWordInString(text, state)
		if wordlike(tok) {
			if !fn(tok) {
				return
			}
		}
	}
}

// Tokens - the tokens of one text, materialized
func Tokens(text string) []string {
	var tt []string
	Each(text, func(tok string) bool {
		tt = append(tt, tok)
		return true
	})
	return tt
}

// Corpus - tokenize several texts, preserving their order
func Corpus(texts []string) [][]string {
	tokenized := make([][]string, len(texts))
	for i := 0; i < len(texts); i++ {
		tokenized[i] = Tokens(texts[i])
	}
	return tokenized
}

// WriteCorpus - one file per document, one token per line; the layout MALLET
// and the notebook workflows expect a pre-tokenized corpus in
func WriteCorpus(dir string, tokenized [][]string, labels []string, perm os.FileMode) error {
	const (
		MISMATCH = "WriteCorpus(): %d documents vs %d labels"
		SUFFIX   = "%s.txt"
	)

	if len(tokenized) != len(labels) {
		return fmt.Errorf(MISMATCH, len(tokenized), len(labels))
	}

	if err := os.MkdirAll(dir, vv.DIRPERMS); err != nil {
		return err
	}

	for i := range tokenized {
		fn := filepath.Join(dir, fmt.Sprintf(SUFFIX, labels[i]))
		content := strings.Join(tokenized[i], "\n")
		if err := os.WriteFile(fn, []byte(content), perm); err != nil {
			return err
		}
	}
	return nil
}

// wordlike - at least one letter or digit; pure punctuation/whitespace runs fail
func wordlike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
