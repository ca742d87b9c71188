package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopSettings holds the single shop profile used on invoices and payment URIs
type ShopSettings struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopName   string    `gorm:"size:255;not null" json:"shop_name"`
	Address    string    `gorm:"type:text" json:"address"`
	GSTIN      string    `gorm:"size:50" json:"gstin"`
	Logo       *string   `gorm:"type:text" json:"logo,omitempty"` // Data URI
	ThemeColor string    `gorm:"size:20" json:"theme_color"`
	UPIID      string    `gorm:"size:255" json:"upi_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating settings
func (s *ShopSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopSettings model
func (ShopSettings) TableName() string {
	return "shop_settings"
}

// DefaultShopSettings returns the settings created on first run
func DefaultShopSettings() *ShopSettings {
	return &ShopSettings{
		ShopName:   "My Shop",
		ThemeColor: "#2563eb",
	}
}
