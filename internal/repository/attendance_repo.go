package repository

import (
	"context"

	"github.com/alican7645/FarmFlow/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository Yoklama deposu
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

var attendanceConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "personel_id"}, {Name: "tarih"}},
	DoUpdates: clause.AssignmentColumns([]string{"durum", "giris_saati", "cikis_saati", "notlar", "updated_at"}),
}

// UpsertAll Tüm satırları tek transaction içinde yazar; herhangi biri
// yazılamazsa hiçbiri kalıcı olmaz.
func (r *AttendanceRepository) UpsertAll(ctx context.Context, items []entity.Attendance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			if err := tx.Clauses(attendanceConflict).Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByDate Günün yoklama kayıtları
func (r *AttendanceRepository) ListByDate(ctx context.Context, tarih string) ([]entity.Attendance, error) {
	var items []entity.Attendance
	err := r.db.WithContext(ctx).
		Preload("Personel").
		Where("tarih = ?", tarih).
		Find(&items).Error
	return items, err
}

// ListByMonth Ayın yoklama kayıtları, tarih + personel sıralı (Excel raporu)
func (r *AttendanceRepository) ListByMonth(ctx context.Context, ay string) ([]entity.Attendance, error) {
	var items []entity.Attendance
	err := r.db.WithContext(ctx).
		Preload("Personel").
		Where("tarih LIKE ?", ay+"%").
		Order("tarih, personel_id").
		Find(&items).Error
	return items, err
}

// DayStat Günlük yoklama özeti
type DayStat struct {
	Tarih          string `json:"tarih"`
	ToplamPersonel int    `json:"toplam_personel"`
	Gelenler       int    `json:"gelenler"`
	Gelmeyenler    int    `json:"gelmeyenler"`
	Izinliler      int    `json:"izinliler"`
	Raporlular     int    `json:"raporlular"`
}

// StatsSince Verilen tarihten bugüne günlük yoklama özetleri
func (r *AttendanceRepository) StatsSince(ctx context.Context, baslangic string) ([]DayStat, error) {
	var stats []DayStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT tarih,
		       COUNT(*) AS toplam_personel,
		       SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS gelenler,
		       SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS gelmeyenler,
		       SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS izinliler,
		       SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS raporlular
		FROM devam
		WHERE tarih >= ?
		GROUP BY tarih
		ORDER BY tarih DESC
	`, entity.AttendancePresent, entity.AttendanceAbsent,
		entity.AttendanceLeave, entity.AttendanceSick, baslangic).Scan(&stats).Error
	return stats, err
}

// MonthCounts Aylık durum sayıları (rapor)
type MonthCounts struct {
	Gelenler    int `json:"gelenler"`
	Gelmeyenler int `json:"gelmeyenler"`
	Izinliler   int `json:"izinliler"`
	Raporlular  int `json:"raporlular"`
}

// CountByMonth Ay içindeki durum dağılımı
func (r *AttendanceRepository) CountByMonth(ctx context.Context, ay string) (*MonthCounts, error) {
	var counts MonthCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS gelenler,
		       SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS gelmeyenler,
		       SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS izinliler,
		       SUM(CASE WHEN durum = ? THEN 1 ELSE 0 END) AS raporlular
		FROM devam
		WHERE tarih LIKE ?
	`, entity.AttendancePresent, entity.AttendanceAbsent,
		entity.AttendanceLeave, entity.AttendanceSick, ay+"%").Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
