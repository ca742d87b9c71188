package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/pkg/apperror"
)

// SettingsService handles shop settings business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves shop settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.ShopSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	ShopName   string
	Address    string
	GSTIN      string
	Logo       *string
	ThemeColor string
	UPIID      string
}

// UpdateSettings updates the shop settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.ShopName = input.ShopName
	settings.Address = input.Address
	settings.GSTIN = input.GSTIN
	settings.Logo = input.Logo
	settings.ThemeColor = input.ThemeColor
	settings.UPIID = input.UPIID

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// BuildUPIURI returns a upi://pay URI for the given amount using the shop's
// configured UPI id. The QR image itself is rendered by the client.
func (s *SettingsService) BuildUPIURI(ctx context.Context, amount float64) (string, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", err
	}
	if settings.UPIID == "" {
		return "", apperror.NewBadRequestError("UPI id is not configured")
	}
	if amount < 0 {
		return "", apperror.NewBadRequestError("Amount must not be negative")
	}

	q := url.Values{}
	q.Set("pa", settings.UPIID)
	q.Set("pn", settings.ShopName)
	q.Set("am", strconv.FormatFloat(amount, 'f', 2, 64))
	q.Set("cu", "INR")
	return "upi://pay?" + q.Encode(), nil
}
