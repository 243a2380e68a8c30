package entity

// Party is an organizational entity mentioned in the contract text.
// Position is the rune offset of the match in the source text.
type Party struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
}

// DateRef is one recognized calendar date. Date is ISO-8601 (YYYY-MM-DD),
// OriginalText the matched substring.
type DateRef struct {
	Date         string `json:"date"`
	OriginalText string `json:"original_text"`
	Position     int    `json:"position"`
}

// ContractDates groups the recognized date roles. AllDates is the full
// pool ordered by source position; the role fields point at elements of
// that pool (first, second, last) per the classification rule.
type ContractDates struct {
	ContractDate   *DateRef  `json:"contract_date,omitempty"`
	EffectiveDate  *DateRef  `json:"effective_date,omitempty"`
	ExpirationDate *DateRef  `json:"expiration_date,omitempty"`
	AllDates       []DateRef `json:"all_dates,omitempty"`
}

// Amount is one recognized monetary amount.
type Amount struct {
	Value        float64 `json:"value"`
	OriginalText string  `json:"original_text"`
	Currency     string  `json:"currency"`
	Position     int     `json:"position"`
}

// KeyTerm is a sentence flagged because it contains a legal keyword.
type KeyTerm struct {
	Keyword    string `json:"keyword"`
	Text       string `json:"text"`
	Importance string `json:"importance"`
}

// Clause is a classified paragraph. Content is truncated to 500 runes.
type Clause struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Keyword string `json:"keyword"`
}

// ContractInfo is the structured record produced by the rule-based
// field extractor. It is a pure function of the input text: two calls
// on identical text yield identical records.
type ContractInfo struct {
	Parties  []Party       `json:"parties"`
	Dates    ContractDates `json:"dates"`
	Amounts  []Amount      `json:"amounts"`
	KeyTerms []KeyTerm     `json:"key_terms"`
	Clauses  []Clause      `json:"clauses"`
}
