package handler

import (
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// ProductionHandler Üretim uç noktaları
type ProductionHandler struct {
	svc *service.ProductionService
}

func NewProductionHandler(svc *service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// List GET /uretim
func (h *ProductionHandler) List(c *gin.Context) {
	params := repository.ProductionListParams{
		Durum:       c.Query("durum"),
		SeraAdi:     c.Query("sera_adi"),
		Baslangic:   c.Query("baslangic"),
		Bitis:       c.Query("bitis"),
		SadeceAktif: c.Query("aktif") == "true",
	}
	items, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// Create POST /uretim
func (h *ProductionHandler) Create(c *gin.Context) {
	var input service.CreateProductionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, p)
}

// Get GET /uretim/:id
func (h *ProductionHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, p)
}

// Update PUT /uretim/:id
func (h *ProductionHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdateProductionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, p)
}

// UpdateStatus PUT /uretim/:id/durum
func (h *ProductionHandler) UpdateStatus(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.UpdateStatus(c.Request.Context(), id, &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, p)
}

// Delete DELETE /uretim/:id
func (h *ProductionHandler) Delete(c *gin.Context) {
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
