package contract

import (
	"testing"
)

func TestExtractDatesRoles(t *testing.T) {
	text := "本契約は2024年1月15日に締結され、2024年6月30日より効力を生じる。"

	dates := extractDates(text)

	if dates.ContractDate == nil || dates.ContractDate.Date != "2024-01-15" {
		t.Fatalf("contract_date = %+v, want 2024-01-15", dates.ContractDate)
	}
	if dates.EffectiveDate == nil || dates.EffectiveDate.Date != "2024-06-30" {
		t.Fatalf("effective_date = %+v, want 2024-06-30", dates.EffectiveDate)
	}
	if dates.ExpirationDate != nil {
		t.Fatalf("expiration_date = %+v, want absent with only two dates", dates.ExpirationDate)
	}
	if len(dates.AllDates) != 2 {
		t.Fatalf("all_dates length = %d, want 2", len(dates.AllDates))
	}
	if dates.AllDates[0].Position >= dates.AllDates[1].Position {
		t.Fatalf("all_dates not ordered by position: %+v", dates.AllDates)
	}
	if dates.AllDates[0].OriginalText != "2024年1月15日" {
		t.Fatalf("original_text = %q", dates.AllDates[0].OriginalText)
	}
}

func TestExtractDatesExpirationNeedsMoreThanTwo(t *testing.T) {
	text := "締結日: 2023/04/01\n開始日: 2023-04-15\n満了日: 2026年3月31日"

	dates := extractDates(text)

	if len(dates.AllDates) != 3 {
		t.Fatalf("all_dates length = %d, want 3", len(dates.AllDates))
	}
	if dates.ExpirationDate == nil || dates.ExpirationDate.Date != "2026-03-31" {
		t.Fatalf("expiration_date = %+v, want last by position (2026-03-31)", dates.ExpirationDate)
	}
	if dates.ContractDate.Date != "2023-04-01" {
		t.Fatalf("contract_date = %q, want 2023-04-01", dates.ContractDate.Date)
	}
	if dates.EffectiveDate.Date != "2023-04-15" {
		t.Fatalf("effective_date = %q, want 2023-04-15", dates.EffectiveDate.Date)
	}
}

func TestExtractDatesFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"japanese", "2024年1月5日", "2024-01-05"},
		{"slash", "2024/01/05", "2024-01-05"},
		{"hyphen", "2024-1-5", "2024-01-05"},
		{"us", "1/5/2024", "2024-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := extractDates(tt.text)
			if len(dates.AllDates) != 1 {
				t.Fatalf("got %d dates, want 1", len(dates.AllDates))
			}
			if dates.AllDates[0].Date != tt.want {
				t.Fatalf("date = %q, want %q", dates.AllDates[0].Date, tt.want)
			}
		})
	}
}

func TestExtractDatesDiscardsInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"month 13", "2024年13月1日"},
		{"day 32", "2024/01/32"},
		{"february 30", "2024-02-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := extractDates(tt.text)
			if len(dates.AllDates) != 0 {
				t.Fatalf("invalid date survived: %+v", dates.AllDates)
			}
		})
	}
}
