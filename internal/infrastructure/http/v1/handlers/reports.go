package handlers

import (
	"github.com/gin-gonic/gin"

	"shopledger/internal/domain/ledger"
	"shopledger/internal/domain/reports"
	"shopledger/internal/infrastructure/http/v1/dto"
)

// ReportHandler serves the derived views.
type ReportHandler struct {
	*BaseHandler
	ledger *ledger.Ledger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(base *BaseHandler, l *ledger.Ledger) *ReportHandler {
	return &ReportHandler{BaseHandler: base, ledger: l}
}

// Dashboard handles GET /reports/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	h.OK(c, h.ledger.Dashboard())
}

// TopProducts handles GET /reports/top-products?limit=
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", reports.DefaultLimit)
	h.OK(c, dto.NewListResponse(dto.FromTopProducts(h.ledger.TopProducts(limit))))
}

// RecentSales handles GET /reports/recent-sales?limit=
func (h *ReportHandler) RecentSales(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", reports.DefaultLimit)
	h.OK(c, dto.NewListResponse(h.ledger.RecentSales(limit)))
}
