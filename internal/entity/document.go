package entity

// PageBlock is one recognized text block on a page. Only populated when
// the page came through the vision adapter; structural PDF extraction
// has no block granularity.
type PageBlock struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Page is one page of recovered text together with the method that
// produced it. PageNumber is 1-based.
type Page struct {
	PageNumber int         `json:"page_number"`
	Text       string      `json:"text"`
	Method     string      `json:"method"`
	Blocks     []PageBlock `json:"blocks,omitempty"`
}

// ExtractedDocument is the result of running the text recovery chain
// against one document. Text is empty iff Pages is empty iff every
// stage failed; in that case Confidence is 0 and Metadata["error"]
// carries the last failure.
//
// Confidence is in [0,1] but its meaning is method-specific: structural
// PDF stages report fixed values, the vision adapter reports a mean of
// per-word confidences. Values are not comparable across methods.
type ExtractedDocument struct {
	Text       string            `json:"text"`
	Pages      []Page            `json:"pages"`
	Confidence float64           `json:"confidence"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Empty reports whether every recovery stage failed.
func (d ExtractedDocument) Empty() bool {
	return len(d.Pages) == 0
}
