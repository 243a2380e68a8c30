package contract

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

const maxParties = 10

// extractParties scans for organizational entity names, both Japanese
// (legal entity markers as prefix or suffix) and romanized. Matches are
// ordered by first occurrence in the source, deduplicated by exact name
// and capped at 10.
func extractParties(text string) []entity.Party {
	var found []entity.Party
	for _, re := range partyPatterns {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			name := strings.TrimSpace(text[idx[2]:idx[3]])
			if utf8.RuneCountInString(name) <= 2 {
				continue
			}
			found = append(found, entity.Party{
				Name:     name,
				Type:     "company",
				Position: runeOffset(text, idx[0]),
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Position < found[j].Position })

	seen := make(map[string]struct{}, len(found))
	parties := make([]entity.Party, 0, len(found))
	for _, p := range found {
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		parties = append(parties, p)
		if len(parties) == maxParties {
			break
		}
	}
	return parties
}
