package contract

import (
	"strings"
	"testing"
)

func TestExtractAmountsYen(t *testing.T) {
	amounts := extractAmounts("委託料は月額800,000円とする。")

	if len(amounts) != 1 {
		t.Fatalf("got %d amounts, want 1: %+v", len(amounts), amounts)
	}
	a := amounts[0]
	if a.Value != 800000.0 {
		t.Fatalf("value = %v, want 800000.0", a.Value)
	}
	if a.Currency != "JPY" {
		t.Fatalf("currency = %q, want JPY", a.Currency)
	}
	if !strings.Contains(a.OriginalText, "800,000") {
		t.Fatalf("original_text = %q", a.OriginalText)
	}
}

func TestExtractAmountsShapes(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		value    float64
		currency string
	}{
		{"yen sign", "前払金 ¥1,500,000 を支払う", 1500000, "JPY"},
		{"dollar sign", "Total fee of $12,500.00 per month", 12500, "USD"},
		{"iso usd", "consideration of 300,000 USD", 300000, "USD"},
		{"iso eur", "licence fee 45,000 EUR", 45000, "EUR"},
		{"multiplier word kept literal", "契約金額は5,000万円とする", 5000, "JPY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amounts := extractAmounts(tt.text)
			if len(amounts) != 1 {
				t.Fatalf("got %d amounts, want 1: %+v", len(amounts), amounts)
			}
			if amounts[0].Value != tt.value {
				t.Fatalf("value = %v, want %v", amounts[0].Value, tt.value)
			}
			if amounts[0].Currency != tt.currency {
				t.Fatalf("currency = %q, want %q", amounts[0].Currency, tt.currency)
			}
		})
	}
}

func TestExtractAmountsCapAndOrder(t *testing.T) {
	text := "初期費用100円、月額200円、保守300円、更新400円、違約金500円、予備600円"

	amounts := extractAmounts(text)

	if len(amounts) != 5 {
		t.Fatalf("got %d amounts, want cap of 5", len(amounts))
	}
	for i, want := range []float64{100, 200, 300, 400, 500} {
		if amounts[i].Value != want {
			t.Fatalf("amounts[%d].Value = %v, want %v (source order)", i, amounts[i].Value, want)
		}
	}
	for i := 1; i < len(amounts); i++ {
		if amounts[i-1].Position >= amounts[i].Position {
			t.Fatalf("positions not ascending: %+v", amounts)
		}
	}
}

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"800円", "JPY"},
		{"¥800", "JPY"},
		{"800 JPY", "JPY"},
		{"$800", "USD"},
		{"800 USD", "USD"},
		{"800 EUR", "EUR"},
		{"800", "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := detectCurrency(tt.in); got != tt.want {
			t.Errorf("detectCurrency(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
