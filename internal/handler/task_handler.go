package handler

import (
	"strconv"

	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// TaskHandler Görev uç noktaları
type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List GET /gorevler?personel_id=&ay=&durum=
func (h *TaskHandler) List(c *gin.Context) {
	params := repository.TaskListParams{
		Ay:    c.Query("ay"),
		Durum: c.Query("durum"),
	}
	if v := c.Query("personel_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			BadRequest(c, "geçersiz personel_id")
			return
		}
		params.PersonelID = uint(id)
	}
	items, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// Create POST /gorevler
func (h *TaskHandler) Create(c *gin.Context) {
	var input service.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	t, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, t)
}

// Get GET /gorevler/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, t)
}

// Update PUT /gorevler/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, t)
}

// Complete PUT /gorevler/:id/tamamla
func (h *TaskHandler) Complete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.Complete(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, t)
}

// Delete DELETE /gorevler/:id
func (h *TaskHandler) Delete(c *gin.Context) {
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
