//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package topics

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

//
// MALLET INTEROP
//
// a MALLET-based workflow leaves three tab-separated files behind; these
// readers pull them back into the same tables the native backend produces
//

// ReadMalletDocumentTopics - parse a MALLET doc-topics file
//
// two layouts exist in the wild: the old one opens with a '#' comment line and
// lists (topic, share) pairs per document; the newer one just lists the shares
// in topic order
func ReadMalletDocumentTopics(path string) (*DocumentTopics, error) {
	const (
		BADLINE = "malformed doc-topics line %d in '%s'"
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	dt := &DocumentTopics{}
	paired := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			paired = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf(BADLINE, lineno, path)
		}

		label := basename(fields[1])
		values := fields[2:]

		var shares []float64
		if paired {
			// (topic, share) pairs: order by the topic column, not file order
			if len(values)%2 != 0 {
				return nil, fmt.Errorf(BADLINE, lineno, path)
			}
			shares = make([]float64, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				topic, e1 := strconv.Atoi(strings.TrimSpace(values[i]))
				share, e2 := strconv.ParseFloat(strings.TrimSpace(values[i+1]), 64)
				if e1 != nil || e2 != nil || topic < 0 || topic >= len(shares) {
					return nil, fmt.Errorf(BADLINE, lineno, path)
				}
				shares[topic] = share
			}
		} else {
			shares = make([]float64, len(values))
			for i, v := range values {
				share, e := strconv.ParseFloat(strings.TrimSpace(v), 64)
				if e != nil {
					return nil, fmt.Errorf(BADLINE, lineno, path)
				}
				shares[i] = share
			}
		}

		dt.Labels = append(dt.Labels, label)
		dt.Shares = append(dt.Shares, shares)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return dt, nil
}

// ReadMalletTopicKeys - parse a MALLET topic-keys file: "id \t alpha \t k1 k2 k3..."
func ReadMalletTopicKeys(path string) ([][]string, error) {
	const (
		BADLINE = "malformed topic-keys line %d in '%s'"
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var keys [][]string

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf(BADLINE, lineno, path)
		}
		keys = append(keys, strings.Fields(fields[2]))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

// WordWeight - one row of a MALLET word-weights file
type WordWeight struct {
	Topic  int
	Token  string
	Weight float64
}

// ReadMalletWordWeights - the n heaviest (topic, token, weight) rows, weight descending
func ReadMalletWordWeights(path string, n int) ([]WordWeight, error) {
	const (
		BADLINE = "malformed word-weights line %d in '%s'"
	)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var ww []WordWeight

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf(BADLINE, lineno, path)
		}
		topic, e1 := strconv.Atoi(strings.TrimSpace(fields[0]))
		weight, e2 := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if e1 != nil || e2 != nil {
			return nil, fmt.Errorf(BADLINE, lineno, path)
		}
		ww = append(ww, WordWeight{Topic: topic, Token: fields[1], Weight: weight})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(ww, func(a WordWeight, b WordWeight) int {
		if a.Weight != b.Weight {
			if b.Weight > a.Weight {
				return 1
			}
			return -1
		}
		return 0
	})

	if n >= 0 && n < len(ww) {
		ww = ww[:n]
	}

	return ww, nil
}

// basename - "path/to/novel.txt" -> "novel"
func basename(p string) string {
	b := filepath.Base(strings.TrimSpace(p))
	return strings.TrimSuffix(b, filepath.Ext(b))
}
