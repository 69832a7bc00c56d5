package models

import "time"

const (
	OrgStatusActive    = "active"
	OrgStatusSuspended = "suspended"
)

type Organization struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Slug   string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Status string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
