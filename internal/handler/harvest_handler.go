package handler

import (
	"strconv"
	"time"

	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// HarvestHandler Hasat uç noktaları
type HarvestHandler struct {
	svc *service.HarvestService
}

func NewHarvestHandler(svc *service.HarvestService) *HarvestHandler {
	return &HarvestHandler{svc: svc}
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		BadRequest(c, "geçersiz "+name)
		return 0, false
	}
	return uint(v), true
}

// List GET /hasat
func (h *HarvestHandler) List(c *gin.Context) {
	personelID, ok := queryUint(c, "personel_id")
	if !ok {
		return
	}
	uretimID, ok := queryUint(c, "uretim_id")
	if !ok {
		return
	}
	params := repository.HarvestListParams{
		Ay:         c.Query("ay"),
		PersonelID: personelID,
		UretimID:   uretimID,
	}
	items, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// Create POST /hasat
func (h *HarvestHandler) Create(c *gin.Context) {
	var input service.CreateHarvestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, rec)
}

// Get GET /hasat/:id
func (h *HarvestHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rec)
}

// Update PUT /hasat/:id
func (h *HarvestHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.CreateHarvestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, rec)
}

// Delete DELETE /hasat/:id
func (h *HarvestHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// Stats GET /hasat/istatistik?ay=YYYY-MM
func (h *HarvestHandler) Stats(c *gin.Context) {
	ay := c.Query("ay")
	if ay == "" {
		ay = time.Now().Format("2006-01")
	}
	stats, err := h.svc.Stats(c.Request.Context(), ay)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, stats)
}
