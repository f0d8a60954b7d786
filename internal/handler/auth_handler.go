package handler

import (
	"errors"

	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler Kimlik doğrulama uç noktaları
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Setup POST /auth/kurulum ilk yöneticiyi oluşturur
func (h *AuthHandler) Setup(c *gin.Context) {
	var input service.SetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Setup(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, service.ErrSetupDone) {
			Forbidden(c, err.Error())
			return
		}
		Fail(c, err)
		return
	}
	Created(c, user)
}

// Login POST /auth/giris
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	user, pair, err := h.svc.Login(c.Request.Context(), &input, c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			Unauthorized(c, err.Error())
			return
		}
		Fail(c, err)
		return
	}
	Success(c, gin.H{
		"kullanici": user,
		"token":     pair,
	})
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh POST /auth/yenile
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input refreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, err.Error())
		return
	}
	pair, err := h.svc.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		Unauthorized(c, err.Error())
		return
	}
	Success(c, pair)
}

// Logout POST /auth/cikis
func (h *AuthHandler) Logout(c *gin.Context) {
	var input refreshInput
	_ = c.ShouldBindJSON(&input) // gövde boş olabilir
	if err := h.svc.Logout(c.Request.Context(), input.RefreshToken); err != nil {
		Fail(c, err)
		return
	}
	Success(c, nil)
}

// Me GET /auth/ben oturumdaki kullanıcı
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.CurrentUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}
