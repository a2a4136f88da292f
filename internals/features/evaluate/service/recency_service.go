package service

import (
	"gorm.io/gorm"

	evaluateModel "bjjh_cleaning_backend/internals/features/evaluate/model"
	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
)

// DefaultWithRecency is a canned message annotated with whether it was
// already reported for the area today, and the streak counter carried over
// from the reference date (normally the last workday).
type DefaultWithRecency struct {
	settingsModel.DefaultModel
	ReportedToday bool `json:"reportedToday"`
	RepeatedToday int  `json:"repeatedToday"`
}

// DefaultsWithRecency cross-references the Default list against the area's
// reports on today and on referenceDate. Matching is exact, case-sensitive
// text equality; among same-text reports on one date the lowest id wins.
func DefaultsWithRecency(db *gorm.DB, areaID int, today, referenceDate string) ([]DefaultWithRecency, error) {
	var defaults []settingsModel.DefaultModel
	if err := db.Order("rank ASC").Find(&defaults).Error; err != nil {
		return nil, err
	}

	todayReports, err := reportsForAreaOnDate(db, areaID, today)
	if err != nil {
		return nil, err
	}
	refReports, err := reportsForAreaOnDate(db, areaID, referenceDate)
	if err != nil {
		return nil, err
	}

	out := make([]DefaultWithRecency, 0, len(defaults))
	for _, d := range defaults {
		entry := DefaultWithRecency{DefaultModel: d}
		for _, r := range todayReports {
			if r.Text == d.Text {
				entry.ReportedToday = true
				break
			}
		}
		for _, r := range refReports {
			if r.Text == d.Text {
				entry.RepeatedToday = r.Repeated + 1
				break
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func reportsForAreaOnDate(db *gorm.DB, areaID int, date string) ([]evaluateModel.ReportModel, error) {
	var reports []evaluateModel.ReportModel
	err := db.Where(`"areaId" = ? AND date = ?`, areaID, date).
		Order("id ASC").
		Find(&reports).Error
	return reports, err
}
