package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mobishop/pos-api/internal/application/service"
	"github.com/mobishop/pos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests. Every report supports
// ?format=csv for export.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// reportRange parses the inclusive from/to date filters
func reportRange(c *gin.Context) *service.ReportRange {
	rng := &service.ReportRange{}
	if s := c.Query("from"); s != "" {
		if from, err := time.Parse("2006-01-02", s); err == nil {
			rng.From = &from
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err := time.Parse("2006-01-02", s); err == nil {
			end := to.Add(24*time.Hour - time.Nanosecond)
			rng.To = &end
		}
	}
	return rng
}

func wantsCSV(c *gin.Context) bool {
	return c.Query("format") == "csv"
}

func csvHeaders(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
}

// Daily handles the per-day sales report
func (h *ReportHandler) Daily(c *gin.Context) {
	rows, err := h.reportService.Daily(c.Request.Context(), reportRange(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsCSV(c) {
		csvHeaders(c, "daily-sales.csv")
		if err := service.WriteSalesCSV(c.Writer, "Date", rows); err != nil {
			c.Error(err)
		}
		return
	}
	response.OK(c, "Daily report retrieved successfully", rows)
}

// Monthly handles the per-month sales report
func (h *ReportHandler) Monthly(c *gin.Context) {
	rows, err := h.reportService.Monthly(c.Request.Context(), reportRange(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsCSV(c) {
		csvHeaders(c, "monthly-sales.csv")
		if err := service.WriteSalesCSV(c.Writer, "Month", rows); err != nil {
			c.Error(err)
		}
		return
	}
	response.OK(c, "Monthly report retrieved successfully", rows)
}

// Tax handles the GST breakdown report
func (h *ReportHandler) Tax(c *gin.Context) {
	report, err := h.reportService.Tax(c.Request.Context(), reportRange(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsCSV(c) {
		csvHeaders(c, "tax-summary.csv")
		if err := service.WriteTaxCSV(c.Writer, report); err != nil {
			c.Error(err)
		}
		return
	}
	response.OK(c, "Tax report retrieved successfully", report)
}

// TopSellers handles the top sellers report
func (h *ReportHandler) TopSellers(c *gin.Context) {
	rows, err := h.reportService.TopSellers(c.Request.Context(), reportRange(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsCSV(c) {
		csvHeaders(c, "top-sellers.csv")
		if err := service.WriteTopSellersCSV(c.Writer, rows); err != nil {
			c.Error(err)
		}
		return
	}
	response.OK(c, "Top sellers retrieved successfully", rows)
}

// LowStock handles the low stock report
func (h *ReportHandler) LowStock(c *gin.Context) {
	products, err := h.reportService.LowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if wantsCSV(c) {
		csvHeaders(c, "low-stock.csv")
		if err := service.WriteLowStockCSV(c.Writer, products); err != nil {
			c.Error(err)
		}
		return
	}
	response.OK(c, "Low stock report retrieved successfully", products)
}
