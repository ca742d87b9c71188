package request

// UpdateSettingsRequest represents a shop settings update request
type UpdateSettingsRequest struct {
	ShopName   string  `json:"shop_name" binding:"required,min=1,max=255"`
	Address    string  `json:"address"`
	GSTIN      string  `json:"gstin" binding:"max=50"`
	Logo       *string `json:"logo"`
	ThemeColor string  `json:"theme_color" binding:"max=20"`
	UPIID      string  `json:"upi_id" binding:"max=255"`
}
