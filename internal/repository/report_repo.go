package repository

import (
	"context"

	"gorm.io/gorm"
)

// ReportRepository Aylık ve özet rapor sorguları
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ProductionMonth Aylık üretim özeti
type ProductionMonth struct {
	Ay             string  `json:"ay"`
	ToplamEkim     int     `json:"toplam_ekim"`
	HasatEdilen    int     `json:"hasat_edilen"`
	ToplamVerim    float64 `json:"toplam_verim"`
	BeklenenToplam float64 `json:"beklenen_toplam"`
}

// ProductionByMonth Ekim tarihine göre aylık üretim dökümü.
// Tarihler metin (YYYY-MM-DD) tutulduğundan ay anahtarı substr ile
// çıkarılır; sorgu sqlite ve postgres üzerinde aynı çalışır.
func (r *ReportRepository) ProductionByMonth(ctx context.Context, baslangic string) ([]ProductionMonth, error) {
	var rows []ProductionMonth
	err := r.db.WithContext(ctx).Raw(`
		SELECT substr(ekim_tarihi, 1, 7) AS ay,
		       COUNT(*) AS toplam_ekim,
		       SUM(CASE WHEN durum = 'Hasat Edildi' THEN 1 ELSE 0 END) AS hasat_edilen,
		       SUM(COALESCE(gercek_verim, 0)) AS toplam_verim,
		       SUM(COALESCE(beklenen_verim, 0)) AS beklenen_toplam
		FROM uretim
		WHERE ekim_tarihi >= ?
		GROUP BY substr(ekim_tarihi, 1, 7)
		ORDER BY ay DESC
	`, baslangic).Scan(&rows).Error
	return rows, err
}

// YieldTotals Dönem için beklenen ve gerçekleşen verim toplamları
type YieldTotals struct {
	Beklenen float64 `json:"beklenen"`
	Gercek   float64 `json:"gercek"`
}

// YieldForMonth Ay içinde ekilen üretimlerin verim toplamları
func (r *ReportRepository) YieldForMonth(ctx context.Context, ay string) (*YieldTotals, error) {
	var totals YieldTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT SUM(COALESCE(beklenen_verim, 0)) AS beklenen,
		       SUM(COALESCE(gercek_verim, 0)) AS gercek
		FROM uretim
		WHERE ekim_tarihi LIKE ?
	`, ay+"%").Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
