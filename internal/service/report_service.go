package service

import (
	"context"
	"time"

	"github.com/alican7645/FarmFlow/internal/repository"
)

// ReportService Dashboard ve aylık rapor servisi
type ReportService struct {
	repos *repository.Repositories
}

func NewReportService(repos *repository.Repositories) *ReportService {
	return &ReportService{repos: repos}
}

// DashboardStats Panel özeti
type DashboardStats struct {
	AktifUretim   int64   `json:"aktif_uretim"`
	DusukStok     int64   `json:"dusuk_stok"`
	SeraSayisi    int64   `json:"sera_sayisi"`
	BuAyHasat     float64 `json:"bu_ay_hasat"`
	AylikPersonel float64 `json:"aylik_personel"`
}

// Dashboard Panel özet sayılarını toplar
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.AktifUretim, err = s.repos.Production.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.DusukStok, err = s.repos.Stock.CountLow(ctx); err != nil {
		return nil, err
	}
	if stats.SeraSayisi, err = s.repos.Production.CountGreenhouses(ctx); err != nil {
		return nil, err
	}
	buAy := time.Now().Format("2006-01")
	if stats.BuAyHasat, err = s.repos.Harvest.MonthTotal(ctx, buAy); err != nil {
		return nil, err
	}
	if stats.AylikPersonel, err = s.repos.Personnel.MonthlyCost(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// MonthlyReport Aylık faaliyet raporu
type MonthlyReport struct {
	Ay              string                  `json:"ay"`
	ToplamHasat     float64                 `json:"toplam_hasat"`
	Devam           *repository.MonthCounts `json:"devam"`
	PersonelMaliyet float64                 `json:"personel_maliyet"`
	BeklenenVerim   float64                 `json:"beklenen_verim"`
	GercekVerim     float64                 `json:"gercek_verim"`
	VerimOrani      *float64                `json:"verim_orani"` // gerçek / beklenen; beklenen sıfırsa null
}

// Monthly Ayın toplamlarını hesaplar. Tüm değerler o ayın satırlarının
// doğrudan toplamıdır, ara tablo veya önbellek yoktur.
func (s *ReportService) Monthly(ctx context.Context, ay string) (*MonthlyReport, error) {
	if err := parseMonth(ay); err != nil {
		return nil, err
	}

	rapor := &MonthlyReport{Ay: ay}
	var err error

	if rapor.ToplamHasat, err = s.repos.Harvest.MonthTotal(ctx, ay); err != nil {
		return nil, err
	}
	if rapor.Devam, err = s.repos.Attendance.CountByMonth(ctx, ay); err != nil {
		return nil, err
	}
	if rapor.PersonelMaliyet, err = s.repos.Personnel.MonthlyCost(ctx); err != nil {
		return nil, err
	}

	verim, err := s.repos.Report.YieldForMonth(ctx, ay)
	if err != nil {
		return nil, err
	}
	rapor.BeklenenVerim = verim.Beklenen
	rapor.GercekVerim = verim.Gercek
	if verim.Beklenen > 0 {
		oran := verim.Gercek / verim.Beklenen
		rapor.VerimOrani = &oran
	}
	return rapor, nil
}

// ProductionReport Son 12 ayın üretim dökümü
func (s *ReportService) ProductionReport(ctx context.Context) ([]repository.ProductionMonth, error) {
	baslangic := time.Now().AddDate(-1, 0, 0).Format(dateLayout)
	return s.repos.Report.ProductionByMonth(ctx, baslangic)
}

// StockReport Kategori bazlı stok değeri
func (s *ReportService) StockReport(ctx context.Context) ([]repository.CategoryValue, error) {
	return s.repos.Stock.ValueByCategory(ctx)
}
