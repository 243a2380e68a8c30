package vision

import (
	"strings"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

// buildResult flattens a structural annotation. Words join into
// paragraphs with single spaces, paragraphs join into blocks with
// newlines. Document confidence is the mean over every word on every
// page; a block's confidence is the mean over its own words. Both
// guard against zero words.
func buildResult(ann *TextAnnotation) Result {
	res := Result{Text: ann.Text}

	totalConf := 0.0
	totalWords := 0
	for _, page := range ann.Pages {
		for _, block := range page.Blocks {
			var paragraphs []string
			blockConf := 0.0
			blockWords := 0
			for _, para := range block.Paragraphs {
				words := make([]string, 0, len(para.Words))
				for _, w := range para.Words {
					var sb strings.Builder
					for _, s := range w.Symbols {
						sb.WriteString(s.Text)
					}
					words = append(words, sb.String())
					blockConf += w.Confidence
					blockWords++
				}
				paragraphs = append(paragraphs, strings.Join(words, " "))
			}
			totalConf += blockConf
			totalWords += blockWords

			div := blockWords
			if div == 0 {
				div = 1
			}
			res.Blocks = append(res.Blocks, entity.PageBlock{
				Text:       strings.Join(paragraphs, "\n"),
				Confidence: blockConf / float64(div),
			})
		}
	}

	div := totalWords
	if div == 0 {
		div = 1
	}
	res.Confidence = totalConf / float64(div)
	return res
}
