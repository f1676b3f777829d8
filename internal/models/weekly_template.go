package models

import "time"

// WeeklyTemplate é o expediente recorrente de um médico em um dia da semana.
type WeeklyTemplate struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PhysicianID uint       `gorm:"not null;index" json:"medico_id"`
	Physician   *Physician `json:"medico,omitempty"`

	Weekday         int    `gorm:"not null" json:"dia_semana"` // 0=domingo ... 6=sábado
	StartTime       string `gorm:"size:5;not null" json:"horario_inicio"`
	EndTime         string `gorm:"size:5;not null" json:"horario_fim"`
	IntervalMinutes int    `gorm:"not null;default:30" json:"intervalo_minutos"`
	Active          bool   `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
