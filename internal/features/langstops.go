//    topictools
//    Copyright: The topictools authors 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package features

//
// BUILT-IN STOPWORD LISTS
//
// corpus-frequency stopword detection is blind to words that are frequent in
// the language but not in a small corpus; these lists cover that gap for the
// two languages the stock corpora come in
//

var (
	// English100 - the most common english function words
	English100 = []string{"the", "of", "and", "a", "to", "in", "is", "was", "he", "for", "it", "with", "as", "his",
		"on", "be", "at", "by", "i", "this", "had", "not", "are", "but", "from", "or", "have", "an", "they", "which",
		"one", "you", "were", "her", "all", "she", "there", "would", "their", "we", "him", "been", "has", "when",
		"who", "will", "more", "no", "if", "out", "so", "said", "what", "up", "its", "about", "into", "than", "them",
		"can", "only", "other", "new", "some", "could", "time", "these", "two", "may", "then", "do", "first", "any",
		"my", "now", "such", "like", "our", "over", "man", "me", "even", "most", "made", "after", "also", "did",
		"many", "before", "must", "through", "back", "years", "where", "much", "your", "way", "well", "down",
		"should", "because"}

	// German100 - the most common german function words
	German100 = []string{"der", "die", "und", "in", "den", "von", "zu", "das", "mit", "sich", "des", "auf", "für",
		"ist", "im", "dem", "nicht", "ein", "eine", "als", "auch", "es", "an", "werden", "aus", "er", "hat", "daß",
		"sie", "nach", "wird", "bei", "einer", "um", "am", "sind", "noch", "wie", "einem", "über", "einen", "so",
		"zum", "war", "haben", "nur", "oder", "aber", "vor", "zur", "bis", "mehr", "durch", "man", "sein", "wurde",
		"sei", "ich", "du", "wir", "ihr", "mir", "mich", "dir", "dich", "uns", "euch", "ihm", "ihn", "ihnen",
		"mein", "dein", "kein", "was", "wenn", "dann", "doch", "schon", "hier", "da", "nun", "denn", "also",
		"ja", "nein", "sehr", "wohl", "immer", "wieder", "alle", "alles", "etwas", "nichts", "selbst", "ganz",
		"gegen", "ohne", "unter", "diese", "dieser"}
)

// BuiltinStopwords - the stock list for a language; unknown languages get nothing
func BuiltinStopwords(lang string) []string {
	switch lang {
	case "english":
		return append([]string(nil), English100...)
	case "german":
		return append([]string(nil), German100...)
	}
	return nil
}
