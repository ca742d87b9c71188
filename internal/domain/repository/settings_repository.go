package repository

import (
	"context"

	"github.com/mobishop/pos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for shop settings data access
type SettingsRepository interface {
	// Get returns the single settings row, creating defaults on first read
	Get(ctx context.Context) (*entity.ShopSettings, error)
	Update(ctx context.Context, settings *entity.ShopSettings) error
}
