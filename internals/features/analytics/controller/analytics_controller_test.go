package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	evaluateModel "bjjh_cleaning_backend/internals/features/evaluate/model"
)

func TestPivotRowCountsByMatchingDefault(t *testing.T) {
	byText := map[string]int{"地板未掃": 1, "垃圾未倒": 2}
	reports := []evaluateModel.ReportModel{
		{Text: "地板未掃"},
		{Text: "地板未掃"},
		{Text: "垃圾未倒"},
		{Text: "黑板沒擦乾淨"}, // free text, no matching default
	}

	row := pivotRow("701", reports, byText)

	assert.Equal(t, "701", row["key"])
	assert.Equal(t, 2, row["1"])
	assert.Equal(t, 1, row["2"])
	assert.Equal(t, 1, row["0"])
}

func TestPivotRowEmptyReports(t *testing.T) {
	row := pivotRow("702", nil, map[string]int{"地板未掃": 1})

	assert.Equal(t, "702", row["key"])
	assert.NotContains(t, row, "1")
	assert.NotContains(t, row, "0")
}
