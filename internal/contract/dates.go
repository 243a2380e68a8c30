package contract

import (
	"sort"
	"strconv"
	"time"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

// extractDates pools every valid calendar date found by the four date
// shapes, sorted by source position. The first is the contract date,
// the second (if any) the effective date, and the last is reported as
// the expiration date only when more than two dates were found. The
// expiration rule reads "last date mentioned" literally; it is the
// observed behavior, not a judgement about real contracts.
func extractDates(text string) entity.ContractDates {
	var pool []entity.DateRef

	for _, dp := range datePatterns {
		for _, idx := range dp.re.FindAllStringSubmatchIndex(text, -1) {
			g1 := text[idx[2]:idx[3]]
			g2 := text[idx[4]:idx[5]]
			g3 := text[idx[6]:idx[7]]

			var year, month, day string
			if dp.mdy {
				month, day, year = g1, g2, g3
			} else {
				year, month, day = g1, g2, g3
			}

			iso, ok := buildDate(year, month, day)
			if !ok {
				continue
			}
			pool = append(pool, entity.DateRef{
				Date:         iso,
				OriginalText: text[idx[0]:idx[1]],
				Position:     runeOffset(text, idx[0]),
			})
		}
	}

	var dates entity.ContractDates
	if len(pool) == 0 {
		return dates
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Position < pool[j].Position })
	dates.AllDates = pool
	dates.ContractDate = &pool[0]
	if len(pool) > 1 {
		dates.EffectiveDate = &pool[1]
	}
	if len(pool) > 2 {
		dates.ExpirationDate = &pool[len(pool)-1]
	}
	return dates
}

// buildDate validates the components as a real calendar date and
// returns it in ISO-8601 form. time.Date normalizes out-of-range
// components (month 13 becomes January), so the round trip is checked.
func buildDate(year, month, day string) (string, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return "", false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
