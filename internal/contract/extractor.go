// Package contract recognizes surface patterns of contract documents
// (party names, dates, monetary amounts, legal keywords, clause
// paragraphs) in recovered text. It performs no semantic understanding:
// the output is a best-effort structured hint layer for downstream
// consumers, traceable back to the source via rune offsets.
package contract

import (
	"unicode/utf8"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

// Extract runs the five independent passes over text and merges their
// output. Every pass is a stateless, single scan of the same immutable
// input; malformed fragments (day 32, unparseable digits) are silently
// dropped, never raised. Passes that found nothing contribute empty
// slices so the record serializes with all five arrays present.
func Extract(text string) entity.ContractInfo {
	info := entity.ContractInfo{
		Parties:  extractParties(text),
		Dates:    extractDates(text),
		Amounts:  extractAmounts(text),
		KeyTerms: extractKeyTerms(text),
		Clauses:  classifyClauses(text),
	}
	if info.Amounts == nil {
		info.Amounts = []entity.Amount{}
	}
	if info.KeyTerms == nil {
		info.KeyTerms = []entity.KeyTerm{}
	}
	if info.Clauses == nil {
		info.Clauses = []entity.Clause{}
	}
	return info
}

// runeOffset converts a byte offset into text to a rune offset, so
// positions stay meaningful to callers that index by character.
func runeOffset(text string, byteOff int) int {
	return utf8.RuneCountInString(text[:byteOff])
}

// truncateRunes caps s at max runes.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	rs := []rune(s)
	return string(rs[:max])
}
