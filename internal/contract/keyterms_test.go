package contract

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractKeyTerms(t *testing.T) {
	text := "乙は、本契約に基づく義務を誠実に履行する責任を負うものとする。\n支払期日は毎月末日とする。"

	terms := extractKeyTerms(text)

	if len(terms) != 3 {
		t.Fatalf("got %d terms, want 3: %+v", len(terms), terms)
	}
	// Keyword-major order: 責任 precedes 義務 precedes 支払 in the table.
	if terms[0].Keyword != "責任" || terms[0].Importance != "high" {
		t.Fatalf("terms[0] = %+v", terms[0])
	}
	if terms[1].Keyword != "義務" || terms[1].Importance != "high" {
		t.Fatalf("terms[1] = %+v", terms[1])
	}
	if terms[2].Keyword != "支払" || terms[2].Importance != "medium" {
		t.Fatalf("terms[2] = %+v", terms[2])
	}
}

func TestExtractKeyTermsSkipsShortSentences(t *testing.T) {
	terms := extractKeyTerms("責任を負う。")
	if len(terms) != 0 {
		t.Fatalf("short sentence should be skipped, got %+v", terms)
	}
}

func TestExtractKeyTermsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, "当事者は第%d条の義務を誠実に履行するものとする。", i+1)
	}

	terms := extractKeyTerms(b.String())

	if len(terms) != maxKeyTerms {
		t.Fatalf("got %d terms, want cap of %d", len(terms), maxKeyTerms)
	}
}
