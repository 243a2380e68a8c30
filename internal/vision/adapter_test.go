package vision

import (
	"math"
	"testing"
)

func word(conf float64, chars ...string) Word {
	w := Word{Confidence: conf}
	for _, c := range chars {
		w.Symbols = append(w.Symbols, Symbol{Text: c})
	}
	return w
}

func TestBuildResultAggregation(t *testing.T) {
	ann := &TextAnnotation{
		Text: "契約書\n甲 乙",
		Pages: []AnnotationPage{{
			Blocks: []Block{
				{Paragraphs: []Paragraph{{Words: []Word{
					word(0.9, "契", "約", "書"),
				}}}},
				{Paragraphs: []Paragraph{{Words: []Word{
					word(0.8, "甲"),
					word(0.7, "乙"),
				}}}},
			},
		}},
	}

	res := buildResult(ann)

	if res.Text != "契約書\n甲 乙" {
		t.Fatalf("text = %q", res.Text)
	}
	if len(res.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(res.Blocks))
	}
	if res.Blocks[0].Text != "契約書" {
		t.Fatalf("block 0 text = %q", res.Blocks[0].Text)
	}
	if res.Blocks[1].Text != "甲 乙" {
		t.Fatalf("block 1 text = %q", res.Blocks[1].Text)
	}
	if math.Abs(res.Blocks[1].Confidence-0.75) > 1e-9 {
		t.Fatalf("block 1 confidence = %v, want 0.75", res.Blocks[1].Confidence)
	}
	// (0.9 + 0.8 + 0.7) / 3 words
	if math.Abs(res.Confidence-0.8) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.8", res.Confidence)
	}
}

func TestBuildResultZeroWords(t *testing.T) {
	ann := &TextAnnotation{
		Text: "x",
		Pages: []AnnotationPage{{
			Blocks: []Block{{Paragraphs: []Paragraph{{}}}},
		}},
	}

	res := buildResult(ann)

	if res.Confidence != 0 {
		t.Fatalf("confidence = %v, want 0 for zero words", res.Confidence)
	}
	if len(res.Blocks) != 1 || res.Blocks[0].Confidence != 0 {
		t.Fatalf("blocks = %+v", res.Blocks)
	}
}

func TestBuildResultMultiPageCountsAllWords(t *testing.T) {
	ann := &TextAnnotation{
		Text: "a b",
		Pages: []AnnotationPage{
			{Blocks: []Block{{Paragraphs: []Paragraph{{Words: []Word{word(1.0, "a")}}}}}},
			{Blocks: []Block{{Paragraphs: []Paragraph{{Words: []Word{word(0.5, "b")}}}}}},
		},
	}

	res := buildResult(ann)

	if math.Abs(res.Confidence-0.75) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.75", res.Confidence)
	}
}
