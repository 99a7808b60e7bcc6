package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email"`
	Photo       string         `json:"photo"`
	LeadTag     string         `json:"lead_tag"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
