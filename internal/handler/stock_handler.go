package handler

import (
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// StockHandler Stok uç noktaları
type StockHandler struct {
	svc *service.StockService
}

func NewStockHandler(svc *service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// List GET /stok
func (h *StockHandler) List(c *gin.Context) {
	params := repository.StockListParams{
		Kategori: c.Query("kategori"),
		Depo:     c.Query("depo"),
		Kritik:   c.Query("kritik") == "true",
	}
	items, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// LowStock GET /stok/kritik
func (h *StockHandler) LowStock(c *gin.Context) {
	items, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// Create POST /stok
func (h *StockHandler) Create(c *gin.Context) {
	var input service.CreateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, item)
}

// Get GET /stok/:id
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// Update PUT /stok/:id
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.CreateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// Delete DELETE /stok/:id
func (h *StockHandler) Delete(c *gin.Context) {
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

// Move POST /stok/:id/hareket
func (h *StockHandler) Move(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.MovementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	item, err := h.svc.Move(c.Request.Context(), id, &input, GetUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// Movements GET /stok/:id/hareketler
func (h *StockHandler) Movements(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	items, err := h.svc.Movements(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}
