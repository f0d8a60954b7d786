package handler

import (
	"errors"
	"strconv"

	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers HTTP işleyici koleksiyonu
type Handlers struct {
	Auth       *AuthHandler
	Production *ProductionHandler
	Harvest    *HarvestHandler
	Stock      *StockHandler
	Personnel  *PersonnelHandler
	Attendance *AttendanceHandler
	Task       *TaskHandler
	Report     *ReportHandler
	User       *UserHandler
}

// NewHandlers İşleyici koleksiyonu oluşturur
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(services.Auth),
		Production: NewProductionHandler(services.Production),
		Harvest:    NewHarvestHandler(services.Harvest),
		Stock:      NewStockHandler(services.Stock),
		Personnel:  NewPersonnelHandler(services.Personnel, services.Task),
		Attendance: NewAttendanceHandler(services.Attendance),
		Task:       NewTaskHandler(services.Task),
		Report:     NewReportHandler(services.Report),
		User:       NewUserHandler(services.User),
	}
}

// Response Ortak yanıt zarfı
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success Başarılı yanıt
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created Oluşturuldu yanıtı
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error Hata yanıtı; zarf kodunun ilk üç hanesi HTTP durumudur
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest Doğrulama hatası yanıtı
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// Unauthorized Kimlik doğrulama hatası yanıtı
func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

// Forbidden Yetki hatası yanıtı
func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

// NotFound Kayıt bulunamadı yanıtı
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError Sunucu hatası yanıtı
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// Fail Servis hatasını yanıt sınıfına çevirir: doğrulama 400,
// bulunamayan kayıt 404, kalanı 500 genel mesajla döner.
func Fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "kayıt bulunamadı")
	default:
		// Ayrıntı log'a gider, istemciye genel mesaj döner
		_ = c.Error(err)
		InternalError(c, "beklenmeyen bir hata oluştu")
	}
}

// GetUserID Bağlamdan kullanıcı kimliğini okur
func GetUserID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(uint); ok {
		return id
	}
	return 0
}

// ParseID Yol parametresindeki sayısal kimliği çözer
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "geçersiz kimlik: "+c.Param(name))
		return 0, false
	}
	return uint(id), true
}
