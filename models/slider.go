package models

import "time"

type Slider struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Slug      string     `gorm:"uniqueIndex" json:"slug" validate:"required"`
	Images    []MediaRef `json:"images" gorm:"type:text;serializer:json"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
