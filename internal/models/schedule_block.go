package models

import "time"

// ScheduleBlock remove disponibilidade de um médico em um intervalo de datas.
// Sem horários é bloqueio de dia inteiro; com horários, apenas a janela
// [StartTime, EndTime) de cada data.
type ScheduleBlock struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PhysicianID uint       `gorm:"not null;index" json:"medico_id"`
	Physician   *Physician `json:"medico,omitempty"`

	StartDate string  `gorm:"size:10;not null;index" json:"data_inicio"`
	EndDate   string  `gorm:"size:10;not null;index" json:"data_fim"`
	StartTime *string `gorm:"size:5" json:"horario_inicio"`
	EndTime   *string `gorm:"size:5" json:"horario_fim"`
	Reason    string  `gorm:"size:255" json:"motivo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
