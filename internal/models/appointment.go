package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	PatientName     string    `gorm:"column:patient_name;not null" json:"patient_name"`
	Datetime        time.Time `gorm:"column:datetime;not null" json:"datetime"`
	AppointmentType string    `gorm:"column:appointment_type;not null" json:"appointment_type"`

	ProfessionalID uint          `gorm:"not null" json:"professional_id"`
	Professional   *Professional `gorm:"foreignKey:ProfessionalID" json:"-"`

	Status string   `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Notes  *string  `json:"notes"`
	Value  *float64 `gorm:"type:numeric(10,2)" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
