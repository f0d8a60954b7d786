package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Hata tanımları
var (
	ErrNotFound = errors.New("record not found")
)

// Repositories Depo katmanı koleksiyonu
type Repositories struct {
	Production *ProductionRepository
	Harvest    *HarvestRepository
	Stock      *StockRepository
	Personnel  *PersonnelRepository
	Attendance *AttendanceRepository
	Task       *TaskRepository
	User       *UserRepository
	Report     *ReportRepository
}

// NewRepositories Depo koleksiyonu oluşturur
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Production: NewProductionRepository(db),
		Harvest:    NewHarvestRepository(db),
		Stock:      NewStockRepository(db),
		Personnel:  NewPersonnelRepository(db),
		Attendance: NewAttendanceRepository(db),
		Task:       NewTaskRepository(db),
		User:       NewUserRepository(db),
		Report:     NewReportRepository(db),
	}
}
