package models

import "time"

// MediaRef points at one stored media file. PublicID is the stable handle the
// admin uses for staged removals.
type MediaRef struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// PDFDoc is referenced by position within its list, not by id.
type PDFDoc struct {
	URL string `json:"url"`
}

type ProductPDFs struct {
	Quickstartpdfs []PDFDoc `json:"quickstartpdfs"`
	Downloadpdfs   []PDFDoc `json:"downloadpdfs"`
}

type ParameterItem struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type ParameterGroup struct {
	Title string          `json:"title"`
	Items []ParameterItem `json:"items"`
}

type Product struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Title           string           `json:"title" validate:"required"`
	Subtitle        string           `json:"subtitle"`
	Description     string           `json:"description" validate:"required"`
	ParentCategory  string           `json:"parentCategory" validate:"required"`
	SubCategory     string           `json:"subCategory"`
	Status          string           `json:"status"` // active | inactive
	Featured        bool             `json:"featured"`
	USPPoints       []string         `json:"uspPoints" gorm:"type:text;serializer:json"`
	Images          []MediaRef       `json:"images" gorm:"type:text;serializer:json"`
	Videos          []MediaRef       `json:"videos" gorm:"type:text;serializer:json"`
	FeaturePictures []MediaRef       `json:"featurePictures" gorm:"type:text;serializer:json"`
	PDF             ProductPDFs      `json:"pdf" gorm:"type:text;serializer:json"`
	Parameters      []ParameterGroup `json:"parameters" gorm:"type:text;serializer:json"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}
