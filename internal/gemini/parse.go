package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lexilens/lexilens/internal/model"
	"github.com/lexilens/lexilens/internal/rules"
)

// parseResult extracts a Result from the model's raw text and normalizes
// it to the output contract: markdown fences stripped, severities coerced,
// points cut or padded to exactly model.PointCount, verdict validated.
func parseResult(raw string) (model.Result, error) {
	var res model.Result
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &res); err != nil {
		return model.Result{}, fmt.Errorf("malformed analysis JSON: %w", err)
	}

	if len(res.Points) == 0 {
		return model.Result{}, fmt.Errorf("analysis has no points")
	}
	for i := range res.Points {
		p := &res.Points[i]
		if p.Title == "" {
			return model.Result{}, fmt.Errorf("point %d has no title", i)
		}
		if !p.Severity.Known() {
			p.Severity = model.SevInfo
		}
		if p.Type == "" {
			p.Type = "General Info"
		}
	}
	if len(res.Points) > model.PointCount {
		res.Points = res.Points[:model.PointCount]
	}
	res.Points = padPoints(res.Points)

	switch res.Verdict.Title {
	case model.VerdictSafe, model.VerdictCaution, model.VerdictAvoid:
	default:
		return model.Result{}, fmt.Errorf("unknown verdict title %q", res.Verdict.Title)
	}
	switch res.Verdict.Color {
	case model.ColorGreen, model.ColorOrange, model.ColorRed:
	default:
		return model.Result{}, fmt.Errorf("unknown verdict color %q", res.Verdict.Color)
	}

	return res, nil
}

// padPoints fills short responses with the built-in fillers, using the same
// remaining-slots index formula as the rule engine so both strategies pad
// identically.
func padPoints(points []model.Point) []model.Point {
	fillers := rules.DefaultRuleset.Fillers
	for len(points) < model.PointCount {
		f := fillers[(model.PointCount-len(points))%len(fillers)]
		points = append(points, model.Point{
			Title:       f.Title,
			Explanation: f.Explanation,
			Severity:    model.SevInfo,
			Type:        "General Info",
		})
	}
	return points
}

// cleanJSON strips markdown code fences the model sometimes wraps around
// its JSON output.
func cleanJSON(raw string) string {
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
