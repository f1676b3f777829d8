package models

import "time"

type Appointment struct {
	ID   uint `gorm:"primaryKey" json:"id"`
	Code int  `gorm:"not null;uniqueIndex:ux_appointments_code" json:"codigo_consulta"`

	PatientID uint     `gorm:"not null;index" json:"paciente_id"`
	Patient   *Patient `json:"paciente,omitempty"`

	PhysicianID uint       `gorm:"not null;index" json:"medico_id"`
	Physician   *Physician `json:"medico,omitempty"`

	Date string `gorm:"column:appointment_date;size:10;not null;index" json:"data_consulta"`
	Time string `gorm:"column:appointment_time;size:5;not null" json:"horario"`

	Status string `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Notes  string `gorm:"type:text" json:"observacoes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
