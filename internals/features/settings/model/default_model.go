package model

import "time"

// DefaultModel is a canned deficiency message offered during inspection.
// Text doubles as the join key against submitted reports.
type DefaultModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Shorthand string    `gorm:"column:shorthand;type:varchar(20);not null;uniqueIndex" json:"shorthand"`
	Text      string    `gorm:"column:text;not null;uniqueIndex" json:"text"`
	Rank      int       `gorm:"column:rank;not null;uniqueIndex" json:"rank"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null;autoUpdateTime" json:"updatedAt"`
}

func (DefaultModel) TableName() string { return "Default" }
