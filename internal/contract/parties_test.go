package contract

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractPartiesJapanese(t *testing.T) {
	text := "株式会社テスト商事（以下「甲」という。）と、サンプル電気株式会社（以下「乙」という。）は、次のとおり契約を締結する。"

	parties := extractParties(text)

	if len(parties) != 2 {
		t.Fatalf("got %d parties, want 2: %+v", len(parties), parties)
	}
	if parties[0].Name != "株式会社テスト商事" {
		t.Fatalf("parties[0].Name = %q", parties[0].Name)
	}
	if parties[1].Name != "サンプル電気株式会社" {
		t.Fatalf("parties[1].Name = %q", parties[1].Name)
	}
	if parties[0].Position >= parties[1].Position {
		t.Fatalf("parties not in source order: %+v", parties)
	}
	for _, p := range parties {
		if p.Type != "company" {
			t.Fatalf("party type = %q, want company", p.Type)
		}
	}
}

func TestExtractPartiesRomanized(t *testing.T) {
	text := "This Agreement is made between Acme Widgets Inc. and Global Partners LLC, effective today."

	parties := extractParties(text)

	if len(parties) != 2 {
		t.Fatalf("got %d parties, want 2: %+v", len(parties), parties)
	}
	if parties[0].Name != "Acme Widgets Inc." {
		t.Fatalf("parties[0].Name = %q", parties[0].Name)
	}
	if parties[1].Name != "Global Partners LLC" {
		t.Fatalf("parties[1].Name = %q", parties[1].Name)
	}
}

func TestExtractPartiesDedup(t *testing.T) {
	text := "株式会社テスト商事（甲）は…\n\n株式会社テスト商事（甲）の義務は…"

	parties := extractParties(text)

	if len(parties) != 1 {
		t.Fatalf("got %d parties, want 1 after dedup: %+v", len(parties), parties)
	}
	if parties[0].Position != 0 {
		t.Fatalf("dedup should keep first occurrence, position = %d", parties[0].Position)
	}
}

func TestExtractPartiesCap(t *testing.T) {
	var b strings.Builder
	names := []string{"Alpha", "Bravo", "Candy", "Delta", "Ember", "Frost", "Giant", "Haven", "Ivory", "Jumbo", "Koala", "Lemon"}
	for _, n := range names {
		fmt.Fprintf(&b, "%s Widgets Inc. ", n)
	}

	parties := extractParties(b.String())

	if len(parties) != maxParties {
		t.Fatalf("got %d parties, want cap of %d", len(parties), maxParties)
	}
}
