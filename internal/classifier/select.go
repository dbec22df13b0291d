package classifier

import (
	"github.com/lexilens/lexilens/internal/model"
	"github.com/lexilens/lexilens/internal/rules"
)

// fillerType tags synthesized padding points.
const fillerType = "General Info"

// selectPoints picks exactly model.PointCount display points from the
// severity-sorted findings. Pass 1 favors category diversity: the first
// (highest-severity) finding of each unused type. Pass 2 backfills with any
// finding not yet used, by id. Remaining slots are padded with fillers.
func (e *Engine) selectPoints(findings []rules.Rule) []model.Point {
	points := make([]model.Point, 0, model.PointCount)
	usedTypes := make(map[string]bool)
	usedIDs := make(map[string]bool)

	for _, f := range findings {
		if len(points) >= model.PointCount {
			break
		}
		if usedTypes[f.Type] {
			continue
		}
		points = append(points, pointFromRule(f))
		usedTypes[f.Type] = true
		usedIDs[f.ID] = true
	}

	for _, f := range findings {
		if len(points) >= model.PointCount {
			break
		}
		if usedIDs[f.ID] {
			continue
		}
		points = append(points, pointFromRule(f))
		usedIDs[f.ID] = true
	}

	return e.padWithFillers(points)
}

// padWithFillers appends filler points until the list holds exactly
// model.PointCount entries. The filler index is a function of how many
// slots remain, recomputed per append:
//
//	index = (PointCount - len(points)) mod len(fillers)
//
// The resulting sequence differs from a plain round-robin for partial fills
// and is part of the output contract — do not simplify.
func (e *Engine) padWithFillers(points []model.Point) []model.Point {
	fillers := e.rs.Fillers()
	for len(points) < model.PointCount {
		f := fillers[(model.PointCount-len(points))%len(fillers)]
		points = append(points, model.Point{
			Title:       f.Title,
			Explanation: f.Explanation,
			Severity:    model.SevInfo,
			Type:        fillerType,
		})
	}
	return points
}

// pointFromRule copies a finding's display fields into a Point.
func pointFromRule(f rules.Rule) model.Point {
	return model.Point{
		Title:         f.Title,
		Explanation:   f.Explanation,
		ExplanationHI: f.ExplanationHI,
		Severity:      f.Severity,
		Type:          f.Type,
	}
}
