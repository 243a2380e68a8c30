package contract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClassifyClausesTermination(t *testing.T) {
	text := "第10条（契約の解除）\n甲または乙は、相手方がその債務を履行しないときは、催告のうえ本契約を解除することができる。"

	clauses := classifyClauses(text)

	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1: %+v", len(clauses), clauses)
	}
	c := clauses[0]
	if c.Type != "termination" || c.Keyword != "解除" {
		t.Fatalf("clause = %+v", c)
	}
	if !strings.Contains(c.Content, "本契約を解除する") {
		t.Fatalf("content does not reference the paragraph: %q", c.Content)
	}
}

func TestClassifyClausesContentTruncated(t *testing.T) {
	text := "解除" + strings.Repeat("あ", 600)

	clauses := classifyClauses(text)

	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}
	if n := utf8.RuneCountInString(clauses[0].Content); n != maxClauseContent {
		t.Fatalf("content length = %d runes, want %d", n, maxClauseContent)
	}
}

func TestClassifyClausesStopsAfterFirstKeyword(t *testing.T) {
	// 終了 appears in the first paragraph but 解除 comes first in the
	// termination keyword table, so the 解除 paragraph wins and the
	// category stops there.
	text := "本契約は期間満了により終了するものとし、更新は行わない。\n\n甲は、乙が違反した場合、本契約を解除することができるものとする。"

	clauses := classifyClauses(text)

	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1: %+v", len(clauses), clauses)
	}
	if clauses[0].Keyword != "解除" {
		t.Fatalf("keyword = %q, want 解除", clauses[0].Keyword)
	}
	if !strings.Contains(clauses[0].Content, "違反した場合") {
		t.Fatalf("wrong paragraph selected: %q", clauses[0].Content)
	}
}

func TestClassifyClausesMultipleCategories(t *testing.T) {
	text := "乙は、業務の対価として甲に対し委託料を支払うものとする。\n\n甲および乙は、本契約に関して知り得た秘密情報を第三者に開示してはならない。"

	clauses := classifyClauses(text)

	if len(clauses) != 2 {
		t.Fatalf("got %d clauses, want 2: %+v", len(clauses), clauses)
	}
	if clauses[0].Type != "payment" || clauses[0].Keyword != "支払" {
		t.Fatalf("clauses[0] = %+v", clauses[0])
	}
	if clauses[1].Type != "confidentiality" || clauses[1].Keyword != "秘密" {
		t.Fatalf("clauses[1] = %+v", clauses[1])
	}
}

func TestClassifyClausesSkipsShortParagraphs(t *testing.T) {
	clauses := classifyClauses("解除する。")
	if len(clauses) != 0 {
		t.Fatalf("short paragraph should not classify, got %+v", clauses)
	}
}
