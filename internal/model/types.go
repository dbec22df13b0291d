package model

// Severity classifies how serious a finding is for the end user.
type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevCaution  Severity = "CAUTION"
	SevSafe     Severity = "SAFE"
	SevInfo     Severity = "INFO"
)

// SeverityRank maps severity to a comparable integer for ranking.
// Higher rank sorts first.
var SeverityRank = map[Severity]int{
	SevCritical: 3,
	SevCaution:  2,
	SevSafe:     1,
	SevInfo:     0,
}

// Known indicates whether s is one of the four defined severity tiers.
func (s Severity) Known() bool {
	_, ok := SeverityRank[s]
	return ok
}

// Verdict colors. One per verdict tier, consumed by the rendering side.
const (
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorRed    = "red"
)

// Verdict titles. Three terminal states, nothing in between.
const (
	VerdictSafe    = "Safe to Install"
	VerdictCaution = "Install with Caution"
	VerdictAvoid   = "Not Recommended"
)

// Fixed verdict reasons for the non-critical tiers. The critical reason is
// derived from the finding that triggered it.
const (
	ReasonSafe    = "No major risks identified."
	ReasonCaution = "Standard risks found (e.g. Arbitration / No Refunds)."
)

// PointCount is the exact number of points every analysis produces.
const PointCount = 5

// Point is one display-ready item in the analysis output. Either a real
// finding or a synthesized General Info filler. Explanation carries the
// default (English) text; ExplanationEN/ExplanationHI are set when the
// producing analyzer emits parallel language variants.
type Point struct {
	Title         string   `json:"title"`
	Explanation   string   `json:"explanation,omitempty"`
	ExplanationEN string   `json:"explanation_en,omitempty"`
	ExplanationHI string   `json:"explanation_hi,omitempty"`
	Severity      Severity `json:"severity"`
	Type          string   `json:"type"`
}

// Verdict is the single overall label for a document.
type Verdict struct {
	Title  string `json:"title"`
	Color  string `json:"color"`
	Reason string `json:"reason"`
}

// Result is the sole output contract of an analyzer: exactly PointCount
// points in display order plus one verdict.
type Result struct {
	Points  []Point `json:"points"`
	Verdict Verdict `json:"verdict"`
}
