package quill

// TabAlignment is the alignment of text at a custom tab stop.
type TabAlignment int

const (
	TabLeft TabAlignment = iota
	TabCenter
	TabRight
	TabDecimal
	TabBar
	TabNum
	TabClear
)

var tabAlignmentTable = newWireTable(TabLeft, map[TabAlignment]string{
	TabLeft:    "left",
	TabCenter:  "center",
	TabRight:   "right",
	TabDecimal: "decimal",
	TabBar:     "bar",
	TabNum:     "num",
	TabClear:   "clear",
})

func (t TabAlignment) String() string {
	return tabAlignmentTable.token(t)
}

// ParseTabAlignment maps a wire token to its alignment. Unknown tokens
// fall back to left.
func ParseTabAlignment(token string) TabAlignment {
	return tabAlignmentTable.parse(token)
}

// TabLeader is the fill character drawn up to a tab stop.
type TabLeader int

const (
	LeaderNone TabLeader = iota
	LeaderDot
	LeaderHeavy
	LeaderHyphen
	LeaderMiddleDot
)

var tabLeaderTable = newWireTable(LeaderNone, map[TabLeader]string{
	LeaderNone:      "none",
	LeaderDot:       "dot",
	LeaderHeavy:     "heavy",
	LeaderHyphen:    "hyphen",
	LeaderMiddleDot: "middleDot",
})

func (l TabLeader) String() string {
	return tabLeaderTable.token(l)
}

// ParseTabLeader maps a wire token to its leader. Unknown tokens fall
// back to none.
func ParseTabLeader(token string) TabLeader {
	return tabLeaderTable.parse(token)
}

// TabStop is a custom tab stop. Position is in twentieths of a point
// from the leading margin.
type TabStop struct {
	Alignment TabAlignment
	Position  int
	Leader    *TabLeader
}
