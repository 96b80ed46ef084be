//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"fmt"
	"strings"
)

//
// FILENAME METADATA
//
// corpora in the wild encode metadata in the filename itself, e.g.
// "goethe_1774_werther.txt" against the pattern "{author}_{year}_{title}";
// none of this feeds the matrix pipeline, it just labels the output tables
//

// ParseMetadata - split a document label against a "{field}_{field}_..." pattern
//
// the final field absorbs any surplus separators, so a title may itself
// contain underscores
func ParseMetadata(label string, pattern string) (map[string]string, error) {
	const (
		BADPAT = "metadata pattern '%s' holds no {field} names"
		SHORT  = "label '%s' has %d parts but pattern '%s' wants %d"
	)

	fields := patternfields(pattern)
	if len(fields) == 0 {
		return nil, fmt.Errorf(BADPAT, pattern)
	}

	parts := strings.SplitN(label, "_", len(fields))
	if len(parts) < len(fields) {
		return nil, fmt.Errorf(SHORT, label, len(parts), pattern, len(fields))
	}

	md := make(map[string]string, len(fields))
	for i, f := range fields {
		md[f] = parts[i]
	}
	return md, nil
}

// patternfields - "{author}_{year}_{title}" -> ["author", "year", "title"]
func patternfields(pattern string) []string {
	var ff []string
	for _, chunk := range strings.Split(pattern, "_") {
		chunk = strings.TrimSpace(chunk)
		if strings.HasPrefix(chunk, "{") && strings.HasSuffix(chunk, "}") && len(chunk) > 2 {
			ff = append(ff, chunk[1:len(chunk)-1])
		}
	}
	return ff
}
