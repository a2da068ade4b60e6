package quill

// LineRule states how the line height of a paragraph is computed from
// its spacing value.
type LineRule int

const (
	RuleAuto LineRule = iota
	RuleAtLeast
	RuleExact
)

var lineRuleTable = newWireTable(RuleAuto, map[LineRule]string{
	RuleAuto:    "auto",
	RuleAtLeast: "atLeast",
	RuleExact:   "exact",
})

func (r LineRule) String() string {
	return lineRuleTable.token(r)
}

// ParseLineRule maps a wire token to its rule. Unknown tokens fall back
// to automatic.
func ParseLineRule(token string) LineRule {
	return lineRuleTable.parse(token)
}

// ParagraphSpacing holds the spacing before and after a paragraph and
// between its lines, all in twentieths of a point. The autospacing flags
// let the consumer override Before/After with its own values.
type ParagraphSpacing struct {
	Before            *int
	After             *int
	BeforeAutospacing *bool
	AfterAutospacing  *bool
	Line              *int
	Rule              *LineRule
}
