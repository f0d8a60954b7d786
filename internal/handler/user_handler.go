package handler

import (
	"strconv"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// UserHandler Kullanıcı yönetimi uç noktaları (sadece admin)
type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List GET /kullanicilar
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, users)
}

// Create POST /kullanicilar
func (h *UserHandler) Create(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, user)
}

// Get GET /kullanicilar/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// Update PUT /kullanicilar/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	// Yönetici kendini kilitleyemez
	if id == GetUserID(c) {
		if input.Rol != entity.RoleAdmin {
			BadRequest(c, "kendi rolünüzü değiştiremezsiniz")
			return
		}
		if input.Aktif != nil && !*input.Aktif {
			BadRequest(c, "kendi hesabınızı devre dışı bırakamazsınız")
			return
		}
	}
	user, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// Delete DELETE /kullanicilar/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	// Kullanıcı kendi hesabını silemez
	if id == GetUserID(c) {
		BadRequest(c, "kendi hesabınızı silemezsiniz")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// LoginAttempts GET /kullanicilar/giris-kayitlari?kullanici_adi=&limit=
func (h *UserHandler) LoginAttempts(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			BadRequest(c, "geçersiz limit")
			return
		}
		limit = n
	}
	attempts, err := h.svc.LoginAttempts(c.Request.Context(), c.Query("kullanici_adi"), limit)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, attempts)
}
