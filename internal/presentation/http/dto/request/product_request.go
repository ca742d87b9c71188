package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Price         float64 `json:"price" binding:"min=0"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	QuantityAlert int     `json:"quantity_alert" binding:"min=0"`
	Description   *string `json:"description"`
	Image         *string `json:"image"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Price         float64 `json:"price" binding:"min=0"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	QuantityAlert int     `json:"quantity_alert" binding:"min=0"`
	Description   *string `json:"description"`
	Image         *string `json:"image"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
