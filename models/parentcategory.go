package models

import "time"

type ParentCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"categoryname" validate:"required"`
	Image     string    `json:"image"`
	Status    string    `json:"status"` // active | inactive
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
