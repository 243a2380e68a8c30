package contract

import (
	"strings"
	"unicode/utf8"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

const maxKeyTerms = 20

// extractKeyTerms splits the text into sentences on Japanese sentence
// terminators and line breaks, then emits one record per
// (sentence, keyword) co-occurrence for sentences longer than 10 runes.
// Records are grouped by keyword in table order and capped at 20.
func extractKeyTerms(text string) []entity.KeyTerm {
	sentences := sentenceSplit.Split(text, -1)

	var terms []entity.KeyTerm
	for _, keyword := range importantKeywords {
		for _, sentence := range sentences {
			trimmed := strings.TrimSpace(sentence)
			if utf8.RuneCountInString(trimmed) <= 10 || !strings.Contains(sentence, keyword) {
				continue
			}
			terms = append(terms, entity.KeyTerm{
				Keyword:    keyword,
				Text:       trimmed,
				Importance: importance(keyword),
			})
			if len(terms) == maxKeyTerms {
				return terms
			}
		}
	}
	return terms
}

func importance(keyword string) string {
	if _, high := highImportance[keyword]; high {
		return "high"
	}
	return "medium"
}
