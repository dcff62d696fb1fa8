package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PropertyTypeAirbnb      = "airbnb"
	PropertyTypeResidential = "residential"
)

type Property struct {
	ID        string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string  `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Name      string  `json:"name"`
	Type      string  `gorm:"type:text" json:"type"`
	ImageURL  *string `json:"image_url"`
	CreatedAt string  `gorm:"type:varchar(64)" json:"created_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}

func (p *Property) OwnerID() string { return p.UserID }
