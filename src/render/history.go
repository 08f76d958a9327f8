package render

import (
	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
)

const (
	HistoryColumns = 8
	NoHistoryText  = "No prediction history yet."
)

// HistoryHeader names the columns in display order.
var HistoryHeader = [HistoryColumns]string{
	"Date", "Quality", "Label", "Alcohol", "pH", "Fixed acidity", "Volatile acidity", "Sulphates",
}

type HistoryRow struct {
	CreatedAt        string `json:"created_at"`
	PredictedQuality string `json:"predicted_quality"`
	QualityLabel     string `json:"quality_label"`
	Alcohol          string `json:"alcohol"`
	PH               string `json:"ph"`
	FixedAcidity     string `json:"fixed_acidity"`
	VolatileAcidity  string `json:"volatile_acidity"`
	Sulphates        string `json:"sulphates"`
}

// HistoryTable is the rendered modal body. When Rows is empty the page shows
// a single placeholder row spanning Colspan columns.
type HistoryTable struct {
	Rows        []HistoryRow `json:"rows"`
	Placeholder string       `json:"placeholder,omitempty"`
	Colspan     int          `json:"colspan,omitempty"`
}

func (t HistoryTable) Empty() bool {
	return len(t.Rows) == 0
}

func NewHistoryTable(records []datastructures.HistoryRecord) HistoryTable {
	if len(records) == 0 {
		return HistoryTable{Rows: []HistoryRow{}, Placeholder: NoHistoryText, Colspan: HistoryColumns}
	}

	rows := make([]HistoryRow, 0, len(records))
	for _, r := range records {
		label := ""
		if r.QualityLabel != nil {
			label = *r.QualityLabel
		}
		rows = append(rows, HistoryRow{
			CreatedAt:        r.CreatedAt,
			PredictedQuality: OptionalFixed(r.PredictedQuality, 2),
			QualityLabel:     label,
			Alcohol:          OptionalFixed(r.Alcohol, 2),
			PH:               OptionalFixed(r.PH, 2),
			FixedAcidity:     OptionalFixed(r.FixedAcidity, 2),
			VolatileAcidity:  OptionalFixed(r.VolatileAcidity, 3),
			Sulphates:        OptionalFixed(r.Sulphates, 2),
		})
	}
	return HistoryTable{Rows: rows}
}
