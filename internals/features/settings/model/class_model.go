package model

import "time"

type ClassModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(10);not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null;autoUpdateTime" json:"updatedAt"`
}

func (ClassModel) TableName() string { return "Class" }
