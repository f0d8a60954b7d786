package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/alican7645/FarmFlow/internal/config"
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/redis/go-redis/v9"
)

// ErrValidation Alan doğrulama hatası; handler katmanı 400 olarak döner
var ErrValidation = errors.New("doğrulama hatası")

// Services Servis koleksiyonu
type Services struct {
	Production *ProductionService
	Harvest    *HarvestService
	Stock      *StockService
	Personnel  *PersonnelService
	Attendance *AttendanceService
	Task       *TaskService
	Report     *ReportService
	Auth       *AuthService
	User       *UserService
}

// NewServices Servis koleksiyonu oluşturur. rdb nil olabilir,
// o durumda refresh token saklama devre dışı kalır.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Production: NewProductionService(repos.Production),
		Harvest:    NewHarvestService(repos.Harvest, repos.Production, repos.Personnel),
		Stock:      NewStockService(repos.Stock),
		Personnel:  NewPersonnelService(repos.Personnel),
		Attendance: NewAttendanceService(repos.Attendance, repos.Personnel),
		Task:       NewTaskService(repos.Task, repos.Personnel),
		Report:     NewReportService(repos),
		Auth:       NewAuthService(repos.User, rdb, cfg),
		User:       NewUserService(repos.User),
	}
}

const dateLayout = "2006-01-02"

// parseDate YYYY-MM-DD biçimini doğrular
func parseDate(alan, deger string) (time.Time, error) {
	t, err := time.Parse(dateLayout, deger)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s geçerli bir tarih değil (YYYY-AA-GG bekleniyor)", ErrValidation, alan)
	}
	return t, nil
}

// parseMonth YYYY-MM biçimini doğrular
func parseMonth(deger string) error {
	if _, err := time.Parse("2006-01", deger); err != nil {
		return fmt.Errorf("%w: ay YYYY-AA biçiminde olmalı", ErrValidation)
	}
	return nil
}
