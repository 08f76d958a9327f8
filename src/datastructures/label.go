package datastructures

import "strings"

// QualityLevel is the closed set of labels the model can predict.
type QualityLevel int

const (
	UnknownQuality QualityLevel = iota
	LowQuality
	MediumQuality
	HighQuality
)

// ParseQualityLevel matches a label case-insensitively. Anything that is not
// low, medium or high maps to UnknownQuality.
func ParseQualityLevel(label string) QualityLevel {
	switch strings.ToLower(label) {
	case "low":
		return LowQuality
	case "medium":
		return MediumQuality
	case "high":
		return HighQuality
	}
	return UnknownQuality
}

func (l QualityLevel) String() string {
	switch l {
	case LowQuality:
		return "Low"
	case MediumQuality:
		return "Medium"
	case HighQuality:
		return "High"
	}
	return "Unknown"
}
