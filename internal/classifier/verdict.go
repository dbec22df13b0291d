package classifier

import (
	"github.com/lexilens/lexilens/internal/model"
	"github.com/lexilens/lexilens/internal/rules"
)

// deriveVerdict maps the full conflict-resolved finding set to one of three
// terminal verdicts, highest severity wins. It deliberately ignores the
// 5-point selection: a critical finding drives the verdict even when the
// display cutoff hides it.
func deriveVerdict(findings []rules.Rule) model.Verdict {
	for _, f := range findings {
		if f.Severity == model.SevCritical {
			return model.Verdict{
				Title:  model.VerdictAvoid,
				Color:  model.ColorRed,
				Reason: f.Title + " detected.",
			}
		}
	}
	for _, f := range findings {
		if f.Severity == model.SevCaution {
			return model.Verdict{
				Title:  model.VerdictCaution,
				Color:  model.ColorOrange,
				Reason: model.ReasonCaution,
			}
		}
	}
	return model.Verdict{
		Title:  model.VerdictSafe,
		Color:  model.ColorGreen,
		Reason: model.ReasonSafe,
	}
}
