package handler

import (
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// PersonnelHandler Personel uç noktaları
type PersonnelHandler struct {
	svc     *service.PersonnelService
	taskSvc *service.TaskService
}

func NewPersonnelHandler(svc *service.PersonnelService, taskSvc *service.TaskService) *PersonnelHandler {
	return &PersonnelHandler{svc: svc, taskSvc: taskSvc}
}

// List GET /personel?aktif=true
func (h *PersonnelHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("aktif") == "true")
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// Create POST /personel
func (h *PersonnelHandler) Create(c *gin.Context) {
	var input service.CreatePersonnelInput
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

// Get GET /personel/:id
func (h *PersonnelHandler) Get(c *gin.Context) {
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

// Update PUT /personel/:id
func (h *PersonnelHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdatePersonnelInput
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

// Delete DELETE /personel/:id
func (h *PersonnelHandler) Delete(c *gin.Context) {
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

// Tasks GET /personel/:id/gorevler
func (h *PersonnelHandler) Tasks(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	// Personel yoksa 404 dönsün diye önce varlık kontrolü yapılır
	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	items, err := h.taskSvc.List(c.Request.Context(), repository.TaskListParams{
		PersonelID: id,
		Durum:      c.Query("durum"),
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// MonthlyCost GET /personel/maliyet
func (h *PersonnelHandler) MonthlyCost(c *gin.Context) {
	total, err := h.svc.MonthlyCost(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"aylik_maliyet": total})
}
