package contract

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

const maxAmounts = 5

// extractAmounts scans for the four monetary shapes and keeps the first
// five matches in source order. The numeric value is whatever digits
// were written; multiplier unit words (万円, 億円) are recorded in the
// original text but do not scale the value.
func extractAmounts(text string) []entity.Amount {
	var found []entity.Amount
	for _, re := range amountPatterns {
		for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
			original := text[idx[0]:idx[1]]
			numeric := nonNumeric.ReplaceAllString(text[idx[2]:idx[3]], "")
			value, err := strconv.ParseFloat(numeric, 64)
			if err != nil {
				continue
			}
			found = append(found, entity.Amount{
				Value:        value,
				OriginalText: original,
				Currency:     detectCurrency(original),
				Position:     runeOffset(text, idx[0]),
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].Position < found[j].Position })
	if len(found) > maxAmounts {
		found = found[:maxAmounts]
	}
	return found
}

// detectCurrency classifies by fixed marker lookup, JPY first.
func detectCurrency(s string) string {
	switch {
	case strings.Contains(s, "円") || strings.Contains(s, "¥") || strings.Contains(s, "￥") || strings.Contains(s, "JPY"):
		return "JPY"
	case strings.Contains(s, "$") || strings.Contains(s, "USD"):
		return "USD"
	case strings.Contains(s, "EUR") || strings.Contains(s, "€"):
		return "EUR"
	default:
		return "UNKNOWN"
	}
}
