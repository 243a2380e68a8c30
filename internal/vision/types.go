package vision

// Wire types for the images:annotate REST endpoint. Only the fields the
// adapter reads are declared; everything else in the response is
// ignored by the JSON decoder.

type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image        imagePayload  `json:"image"`
	Features     []feature     `json:"features"`
	ImageContext *imageContext `json:"imageContext,omitempty"`
}

type imagePayload struct {
	// Base64-encoded image bytes.
	Content string `json:"content"`
}

type feature struct {
	Type string `json:"type"`
}

type imageContext struct {
	LanguageHints []string `json:"languageHints,omitempty"`
}

type annotateResponse struct {
	Responses []imageResponse `json:"responses"`
}

type imageResponse struct {
	FullTextAnnotation *TextAnnotation `json:"fullTextAnnotation"`
	Error              *rpcStatus      `json:"error"`
}

type rpcStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TextAnnotation is the structural text result for one image: pages
// hold blocks, blocks hold paragraphs, paragraphs hold words, words
// hold symbols. Confidence is only reported at word granularity.
type TextAnnotation struct {
	Text  string           `json:"text"`
	Pages []AnnotationPage `json:"pages"`
}

type AnnotationPage struct {
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

type Paragraph struct {
	Words []Word `json:"words"`
}

type Word struct {
	Symbols    []Symbol `json:"symbols"`
	Confidence float64  `json:"confidence"`
}

type Symbol struct {
	Text string `json:"text"`
}
