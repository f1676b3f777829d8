package models

import "time"

type Patient struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:120;not null" json:"nome"`
	CPF       string `gorm:"size:11;not null;uniqueIndex:ux_patients_cpf" json:"cpf"`
	Phone     string `gorm:"size:20" json:"telefone"`
	Email     string `gorm:"size:100" json:"email"`
	BirthDate string `gorm:"size:10" json:"data_nascimento"`
	Address   string `gorm:"size:255" json:"endereco"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
