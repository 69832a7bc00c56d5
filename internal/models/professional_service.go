package models

import "time"

// ProfessionalService assigns a Service to a Professional, optionally
// overriding the default duration.
type ProfessionalService struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`
	ServiceID      uint `json:"service_id"`

	CustomDurationMin *int `json:"custom_duration_min"`
	Enabled           bool `gorm:"default:true" json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
