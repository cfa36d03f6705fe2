// Package keywords derives search keywords from quote content. The output is
// deterministic for a given input: lowercased, accent-folded, punctuation
// stripped, stop words and short tokens removed, capped at MaxKeywords.
package keywords

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxKeywords = 20

// stopWords holds accent-folded forms; both the list and the candidate tokens
// are folded before comparison, so "été" and "ete" are treated alike.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// French
		"avec", "dans", "pour", "cette", "sont", "mais", "donc", "ainsi",
		"alors", "aussi", "comme", "tout", "tous", "toute", "toutes",
		"leur", "leurs", "nous", "vous", "elle", "elles", "etre", "avoir",
		"fait", "faire", "plus", "moins", "tres", "bien", "encore",
		"depuis", "entre", "vers", "chez", "sans", "sous", "apres",
		"avant", "pendant", "quand", "parce", "celui", "celle", "ceux",
		"cela", "votre", "notre", "meme", "autre", "autres", "peut",
		"dont", "quel", "quelle", "quels", "quelles",
		// English
		"this", "that", "with", "from", "have", "been", "were", "what",
		"when", "where", "which", "there", "their", "about", "would",
		"could", "should",
	} {
		stopWords[w] = struct{}{}
	}
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldAccents strips combining marks: "émission" -> "emission".
func foldAccents(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// Extract returns the ordered keyword list for a content string.
func Extract(content string) []string {
	folded := foldAccents(strings.ToLower(content))

	tokens := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	keywords := make([]string, 0, MaxKeywords)
	seen := make(map[string]struct{})

	for _, token := range tokens {
		if len([]rune(token)) <= 3 {
			continue
		}
		if _, isStop := stopWords[token]; isStop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
		if len(keywords) == MaxKeywords {
			break
		}
	}

	return keywords
}
