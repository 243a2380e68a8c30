package contract

import (
	"strings"
	"unicode/utf8"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

const maxClauseContent = 500

// classifyClauses assigns paragraphs to the six fixed clause
// categories. For each category the keywords are tried in table order;
// the first keyword present anywhere in the text that also has a
// qualifying paragraph (> 20 runes after trim) yields exactly one
// clause, and scanning stops for that category. Dedup key is
// (type, keyword).
func classifyClauses(text string) []entity.Clause {
	paragraphs := paragraphSplit.Split(text, -1)

	var clauses []entity.Clause
	seen := make(map[[2]string]struct{})

	for _, cat := range clauseCategories {
		for _, keyword := range cat.Keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			emitted := false
			for _, paragraph := range paragraphs {
				trimmed := strings.TrimSpace(paragraph)
				if utf8.RuneCountInString(trimmed) <= 20 || !strings.Contains(paragraph, keyword) {
					continue
				}
				key := [2]string{cat.Type, keyword}
				if _, dup := seen[key]; dup {
					break
				}
				seen[key] = struct{}{}
				clauses = append(clauses, entity.Clause{
					Type:    cat.Type,
					Content: truncateRunes(trimmed, maxClauseContent),
					Keyword: keyword,
				})
				emitted = true
				break
			}
			if emitted {
				break
			}
		}
	}
	return clauses
}
