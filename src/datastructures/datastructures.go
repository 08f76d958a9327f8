package datastructures

import (
	"strings"
)

type Field string

const (
	FixedAcidity       Field = "fixed_acidity"
	VolatileAcidity    Field = "volatile_acidity"
	CitricAcid         Field = "citric_acid"
	ResidualSugar      Field = "residual_sugar"
	Chlorides          Field = "chlorides"
	FreeSulfurDioxide  Field = "free_sulfur_dioxide"
	TotalSulfurDioxide Field = "total_sulfur_dioxide"
	Density            Field = "density"
	PH                 Field = "ph"
	Sulphates          Field = "sulphates"
	Alcohol            Field = "alcohol"
)

// Fields lists the form inputs in the order they are shown and sent.
var Fields = []Field{
	FixedAcidity,
	VolatileAcidity,
	CitricAcid,
	ResidualSugar,
	Chlorides,
	FreeSulfurDioxide,
	TotalSulfurDioxide,
	Density,
	PH,
	Sulphates,
	Alcohol,
}

var fieldLabels = map[Field]string{
	FixedAcidity:       "Fixed acidity",
	VolatileAcidity:    "Volatile acidity",
	CitricAcid:         "Citric acid",
	ResidualSugar:      "Residual sugar",
	Chlorides:          "Chlorides",
	FreeSulfurDioxide:  "Free sulfur dioxide",
	TotalSulfurDioxide: "Total sulfur dioxide",
	Density:            "Density",
	PH:                 "pH",
	Sulphates:          "Sulphates",
	Alcohol:            "Alcohol",
}

// Label returns the human readable name of the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// MeasurementSet maps every field to its trimmed input value.
// An empty value means the input was left unfilled.
type MeasurementSet map[Field]string

// CollectMeasurements reads all eleven fields through get and trims them.
func CollectMeasurements(get func(Field) string) MeasurementSet {
	m := make(MeasurementSet, len(Fields))
	for _, f := range Fields {
		m[f] = strings.TrimSpace(get(f))
	}
	return m
}

// FirstEmpty returns the first unfilled field in form order.
func (m MeasurementSet) FirstEmpty() (Field, bool) {
	for _, f := range Fields {
		if m[f] == "" {
			return f, true
		}
	}
	return "", false
}

type PredictResponse struct {
	Success          bool     `json:"success"`
	PredictedQuality *float64 `json:"predicted_quality,omitempty"`
	QualityLabel     *string  `json:"quality_label,omitempty"`
	Error            string   `json:"error,omitempty"`
}

type PredictionResult struct {
	PredictedQuality float64 `json:"predicted_quality"`
	QualityLabel     string  `json:"quality_label"`
}

// HistoryRecord is one past prediction as served by the backend. Numeric
// values are pointers because the backend may send null for them.
type HistoryRecord struct {
	CreatedAt        string   `json:"created_at"`
	PredictedQuality *float64 `json:"predicted_quality"`
	QualityLabel     *string  `json:"quality_label"`
	Alcohol          *float64 `json:"alcohol"`
	PH               *float64 `json:"ph"`
	FixedAcidity     *float64 `json:"fixed_acidity"`
	VolatileAcidity  *float64 `json:"volatile_acidity"`
	Sulphates        *float64 `json:"sulphates"`
}
