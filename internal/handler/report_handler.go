package handler

import (
	"time"

	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// ReportHandler Rapor uç noktaları
type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Dashboard GET /rapor/ozet ana panel sayaçları
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, stats)
}

// Monthly GET /rapor/aylik?ay=YYYY-MM (varsayılan içinde bulunulan ay)
func (h *ReportHandler) Monthly(c *gin.Context) {
	ay := c.Query("ay")
	if ay == "" {
		ay = time.Now().Format("2006-01")
	}
	report, err := h.svc.Monthly(c.Request.Context(), ay)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, report)
}

// Production GET /rapor/uretim son 12 ayın ekim sayıları
func (h *ReportHandler) Production(c *gin.Context) {
	rows, err := h.svc.ProductionReport(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}

// Stock GET /rapor/stok kategori bazında stok değeri
func (h *ReportHandler) Stock(c *gin.Context) {
	rows, err := h.svc.StockReport(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rows)
}
