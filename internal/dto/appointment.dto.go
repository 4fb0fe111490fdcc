package dto

import "time"

// AppointmentDTO is the detailed projection used by single, day and range
// reads.
type AppointmentDTO struct {
	ID               uint      `json:"id"`
	ClientID         *uint     `json:"client_id"`
	PatientName      string    `json:"patient_name"`
	Datetime         time.Time `json:"datetime"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	AppointmentType  string    `json:"appointment_type"`
	ProfessionalID   uint      `json:"professional_id"`
	ProfessionalName *string   `json:"professional_name"`
	Status           string    `json:"status"`
	Notes            *string   `json:"notes"`
	Value            *float64  `json:"value"`
	ClientPhoto      *string   `json:"client_photo,omitempty"`
	ClientEmail      *string   `json:"client_email,omitempty"`
	ClientPhone      *string   `json:"client_phone,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// MonthEntryDTO is the lightweight calendar cell entry.
type MonthEntryDTO struct {
	ID               uint     `json:"id"`
	ClientID         *uint    `json:"client_id"`
	PatientName      string   `json:"patient_name"`
	Time             string   `json:"time"`
	AppointmentType  string   `json:"appointment_type"`
	Status           string   `json:"status"`
	ProfessionalName *string  `json:"professional_name"`
	Value            *float64 `json:"value"`
}
