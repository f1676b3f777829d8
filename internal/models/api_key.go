package models

import "time"

// APIKey é uma chave fixa de integração. Só o hash é persistido; o prefixo
// permite localizar a linha sem comparar todos os hashes.
type APIKey struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"nome"`
	Description string `gorm:"size:255" json:"descricao"`
	Prefix      string `gorm:"size:12;not null;index" json:"prefixo"`
	KeyHash     string `gorm:"size:255;not null" json:"-"`
	Active      bool   `gorm:"not null;default:true" json:"ativo"`

	LastUsedAt *time.Time `json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
