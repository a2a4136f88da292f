package model

import (
	"time"

	"gorm.io/datatypes"

	settingsModel "bjjh_cleaning_backend/internals/features/settings/model"
)

// ReportModel is one recorded deficiency for an area on a date.
// Reports are immutable after creation; the only mutation is deletion.
type ReportModel struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Date     string `gorm:"column:date;type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	Text     string `gorm:"column:text;not null;index" json:"text"`
	Repeated int    `gorm:"column:repeated;not null;default:0" json:"repeated"`

	// Storage keys of the evidence photos, JSON array of strings (nullable).
	Evidence datatypes.JSON `gorm:"column:evidence" json:"evidence,omitempty"`
	Comment  *string        `gorm:"column:comment" json:"comment,omitempty"`

	AreaID    int       `gorm:"column:areaId;not null;index" json:"areaId"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null;autoUpdateTime" json:"updatedAt"`

	Area *settingsModel.AreaModel `gorm:"foreignKey:AreaID;references:ID" json:"area,omitempty"`
}

func (ReportModel) TableName() string { return "Report" }

// EvidenceKeys decodes the evidence JSON column. A null column is an empty list.
func (r *ReportModel) EvidenceKeys() []string {
	if len(r.Evidence) == 0 {
		return nil
	}
	var keys []string
	if err := jsonUnmarshal(r.Evidence, &keys); err != nil {
		return nil
	}
	return keys
}
