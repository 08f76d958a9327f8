// Package render turns prediction results and history records into the
// strings and classes the page shows.
package render

import (
	"math"
	"strconv"
	"strings"

	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
)

const (
	FilledStar = "★"
	EmptyStar  = "☆"
	MaxStars   = 5
)

type labelPresentation struct {
	Description string
	Level       string
	Class       string
}

var presentations = map[datastructures.QualityLevel]labelPresentation{
	datastructures.LowQuality: {
		Description: "Quality is predicted to be on the lower side. The wine may taste sharper or less balanced.",
		Level:       "Predicted as Low quality",
		Class:       "label-low",
	},
	datastructures.MediumQuality: {
		Description: "This wine is predicted to be of average quality, reasonably balanced and drinkable.",
		Level:       "Predicted as Medium quality",
		Class:       "label-medium",
	},
	datastructures.HighQuality: {
		Description: "Great news! This wine is predicted to be high quality with well-balanced characteristics.",
		Level:       "Predicted as High quality",
		Class:       "label-high",
	},
	datastructures.UnknownQuality: {
		Description: "Prediction label not available.",
		Level:       "Prediction available",
		Class:       "",
	},
}

// ResultPanel holds everything the result panel displays.
type ResultPanel struct {
	Score       string `json:"score"`
	Stars       string `json:"stars"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
	BadgeClass  string `json:"badge_class,omitempty"`
}

// QualityToStars maps a 0-10 score to five glyphs. Halves round up.
func QualityToStars(quality float64) string {
	n := 0
	if !math.IsNaN(quality) {
		n = int(math.Max(0, math.Min(MaxStars, math.Floor(quality/10*MaxStars+0.5))))
	}
	return strings.Repeat(FilledStar, n) + strings.Repeat(EmptyStar, MaxStars-n)
}

func LabelDescription(label string) string {
	return presentations[datastructures.ParseQualityLevel(label)].Description
}

func LevelText(label string) string {
	return presentations[datastructures.ParseQualityLevel(label)].Level
}

// BadgeClass returns the style class for the badge, or "" for labels outside
// low/medium/high.
func BadgeClass(label string) string {
	return presentations[datastructures.ParseQualityLevel(label)].Class
}

func NewResultPanel(res datastructures.PredictionResult) ResultPanel {
	p := presentations[datastructures.ParseQualityLevel(res.QualityLabel)]
	return ResultPanel{
		Score:       Fixed(res.PredictedQuality, 1),
		Stars:       QualityToStars(res.PredictedQuality),
		Level:       p.Level,
		Description: p.Description,
		Badge:       res.QualityLabel,
		BadgeClass:  p.Class,
	}
}

// Fixed formats v with exactly digits decimals.
func Fixed(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// OptionalFixed formats v like Fixed and renders a missing value as "".
func OptionalFixed(v *float64, digits int) string {
	if v == nil {
		return ""
	}
	return Fixed(*v, digits)
}
