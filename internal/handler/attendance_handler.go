package handler

import (
	"fmt"
	"net/url"
	"time"

	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// AttendanceHandler Devam (puantaj) uç noktaları
type AttendanceHandler struct {
	svc *service.AttendanceService
}

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// ListByDate GET /devam?tarih=YYYY-MM-DD (varsayılan bugün)
func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	tarih := c.Query("tarih")
	if tarih == "" {
		tarih = time.Now().Format("2006-01-02")
	}
	items, err := h.svc.ListByDate(c.Request.Context(), tarih)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// SaveDaySheet POST /devam bir günün puantaj kayıtlarını topluca yazar
func (h *AttendanceHandler) SaveDaySheet(c *gin.Context) {
	var input service.DaySheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	items, err := h.svc.SaveDaySheet(c.Request.Context(), &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// WeekStats GET /devam/istatistik son 7 günün özet sayıları
func (h *AttendanceHandler) WeekStats(c *gin.Context) {
	stats, err := h.svc.WeekStats(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, stats)
}

// Export GET /devam/rapor?ay=YYYY-MM aylık puantajı xlsx olarak indirir
func (h *AttendanceHandler) Export(c *gin.Context) {
	ay := c.Query("ay")
	if ay == "" {
		ay = time.Now().Format("2006-01")
	}
	f, filename, err := h.svc.ExportMonth(c.Request.Context(), ay)
	if err != nil {
		Fail(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
