package contract

import "regexp"

// Pattern and keyword tables are package-level, ordered configuration.
// Iteration order decides tie-breaks and the first-match-wins truncation
// rules, so keep these slices ordered and append-only.

// Japanese legal entity markers, used both as name prefix and suffix.
const entityMarkers = `株式会社|有限会社|合同会社|合資会社|合名会社|一般社団法人|公益社団法人|学校法人|医療法人`

// Characters allowed inside an organization name.
const nameChars = `[\p{Han}\p{Hiragana}\p{Katakana}ー・0-9A-Za-z]`

var partyPatterns = []*regexp.Regexp{
	// marker-prefixed: 株式会社サンプル商事
	regexp.MustCompile(`((?:` + entityMarkers + `)` + nameChars + `+)`),
	// marker-suffixed: サンプル商事株式会社
	regexp.MustCompile(`(` + nameChars + `+(?:` + entityMarkers + `))`),
	// romanized: Acme Widgets Inc.
	regexp.MustCompile(`([A-Z][a-z]+ [A-Z][a-z]+ (?:Inc\.|Corp\.|Ltd\.|LLC|Co\.))`),
}

// datePattern pairs a regular expression with the group order its
// captures arrive in.
type datePattern struct {
	re  *regexp.Regexp
	mdy bool // captures are month, day, year instead of year, month, day
}

var datePatterns = []datePattern{
	{re: regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)},
	{re: regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`)},
	{re: regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)},
	{re: regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`), mdy: true},
}

var amountPatterns = []*regexp.Regexp{
	// digit groups followed by a yen unit word, including the
	// ten-thousand (万) and hundred-million (億) multiplier forms
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)(?:円|万円|億円)`),
	regexp.MustCompile(`[¥￥](\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*(?:\.\d{2})?) *(?:USD|JPY|EUR)`),
}

// importantKeywords flags sentences worth surfacing as key terms.
var importantKeywords = []string{
	"責任", "義務", "権利", "保証", "補償", "違約金", "解除", "終了",
	"更新", "延長", "変更", "修正", "通知", "承諾", "合意", "協議",
	"支払", "料金", "費用", "手数料", "税金", "消費税",
}

// highImportance marks the subset of keywords reported as "high".
var highImportance = map[string]struct{}{
	"責任":  {},
	"義務":  {},
	"違約金": {},
	"解除":  {},
}

// clauseCategory maps one clause type to its ordered keyword list.
type clauseCategory struct {
	Type     string
	Keywords []string
}

var clauseCategories = []clauseCategory{
	{Type: "payment", Keywords: []string{"支払", "料金", "費用", "代金", "報酬"}},
	{Type: "termination", Keywords: []string{"解除", "終了", "破棄", "無効"}},
	{Type: "liability", Keywords: []string{"責任", "損害", "補償", "賠償"}},
	{Type: "confidentiality", Keywords: []string{"秘密", "機密", "守秘", "開示"}},
	{Type: "intellectual_property", Keywords: []string{"知的財産", "著作権", "特許", "商標"}},
	{Type: "general", Keywords: []string{"一般", "雑則", "準拠法", "管轄"}},
}

var (
	sentenceSplit  = regexp.MustCompile(`[。．\n]`)
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
	nonNumeric     = regexp.MustCompile(`[^\d.]`)
)
