package models

import "time"

type Blog struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `json:"title" validate:"required"`
	Slug          string     `gorm:"uniqueIndex" json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags" gorm:"type:text;serializer:json"`
	Status        string     `json:"status"` // draft | published
	Author        string     `json:"author"`
	FeaturedImage MediaRef   `json:"featuredImage" gorm:"type:text;serializer:json"`
	Gallery       []MediaRef `json:"gallery" gorm:"type:text;serializer:json"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
