package models

import (
	"time"

	"gorm.io/gorm"
)

type Lead struct {
	ID              string `gorm:"type:uuid;primaryKey"`
	Name            string `gorm:"size:255;not null"`
	Email           string `gorm:"size:320;index"`
	Phone           string `gorm:"size:32;index"`
	Company         string `gorm:"size:255"`
	Position        string `gorm:"size:255"`
	Website         string `gorm:"size:512"`
	Source          string `gorm:"size:64;not null"`
	Status          string `gorm:"size:64;not null"`
	Product         string `gorm:"size:255"`
	Value           *float64
	AssignedTo      *string `gorm:"type:uuid;index"`
	Tags            string  `gorm:"type:text"`
	Address         string  `gorm:"size:512"`
	City            string  `gorm:"size:120"`
	State           string  `gorm:"size:120"`
	ZipCode         string  `gorm:"size:20"`
	Country         string  `gorm:"size:120"`
	DefaultLanguage string  `gorm:"size:64"`
	Description     string  `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Lead) TableName() string {
	return "leads"
}

type LeadNote struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	LeadID    string  `gorm:"type:uuid;index;not null"`
	Body      string  `gorm:"type:text;not null"`
	System    bool    `gorm:"not null;default:false"`
	AuthorID  *string `gorm:"type:uuid"`
	CreatedAt time.Time
}

func (LeadNote) TableName() string {
	return "lead_notes"
}
