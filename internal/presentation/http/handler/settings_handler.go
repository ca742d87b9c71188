package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mobishop/pos-api/internal/application/service"
	"github.com/mobishop/pos-api/internal/presentation/http/dto/request"
	"github.com/mobishop/pos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles shop settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get retrieves the shop settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update updates the shop settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		ShopName:   req.ShopName,
		Address:    req.Address,
		GSTIN:      req.GSTIN,
		Logo:       req.Logo,
		ThemeColor: req.ThemeColor,
		UPIID:      req.UPIID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// UPIURI builds a upi://pay URI for the given amount
func (h *SettingsHandler) UPIURI(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid amount")
		return
	}

	uri, err := h.settingsService.BuildUPIURI(c.Request.Context(), amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "UPI URI built successfully", gin.H{"uri": uri})
}
