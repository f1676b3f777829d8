package models

import "time"

type Physician struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:120;not null" json:"nome"`
	CRM       string `gorm:"size:30;not null;uniqueIndex:ux_physicians_crm" json:"crm"`
	Specialty string `gorm:"size:80;not null" json:"especialidade"`
	Phone     string `gorm:"size:20" json:"telefone"`
	Email     string `gorm:"size:100" json:"email"`
	PhotoURL  string `gorm:"size:255" json:"foto_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
