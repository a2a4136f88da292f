package model

import "time"

// Rank is unique across all areas (global ordering, not per class).
type AreaModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(60);not null;uniqueIndex" json:"name"`
	ClassID   int       `gorm:"column:classId;not null;index" json:"classId"`
	Rank      int       `gorm:"column:rank;not null;uniqueIndex" json:"rank"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null;autoUpdateTime" json:"updatedAt"`

	Class *ClassModel `gorm:"foreignKey:ClassID;references:ID" json:"class,omitempty"`
}

func (AreaModel) TableName() string { return "Area" }
