package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/xuri/excelize/v2"
)

// AttendanceService Yoklama servisi
type AttendanceService struct {
	repo     *repository.AttendanceRepository
	persRepo *repository.PersonnelRepository
}

func NewAttendanceService(repo *repository.AttendanceRepository, persRepo *repository.PersonnelRepository) *AttendanceService {
	return &AttendanceService{repo: repo, persRepo: persRepo}
}

// DayEntry Günlük çizelgede tek personelin durumu
type DayEntry struct {
	PersonelID uint   `json:"personel_id" binding:"required"`
	Durum      string `json:"durum" binding:"required"`
	GirisSaati string `json:"giris_saati"`
	CikisSaati string `json:"cikis_saati"`
	Notlar     string `json:"notlar"`
}

// DaySheetInput Gün çizelgesi isteği
type DaySheetInput struct {
	Tarih    string     `json:"tarih" binding:"required"`
	Kayitlar []DayEntry `json:"kayitlar" binding:"required,min=1,dive"`
}

// SaveDaySheet Günün yoklamasını kaydeder. Personel+tarih başına tek satır
// tutulur; aynı gün tekrar gönderilirse mevcut satırlar güncellenir.
func (s *AttendanceService) SaveDaySheet(ctx context.Context, input *DaySheetInput) ([]entity.Attendance, error) {
	if _, err := parseDate("tarih", input.Tarih); err != nil {
		return nil, err
	}
	for _, k := range input.Kayitlar {
		if !entity.ValidAttendanceStatus(k.Durum) {
			return nil, fmt.Errorf("%w: geçersiz devam durumu: %s", ErrValidation, k.Durum)
		}
		if _, err := s.persRepo.FindByID(ctx, k.PersonelID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: personel bulunamadı: %d", ErrValidation, k.PersonelID)
			}
			return nil, err
		}
	}

	saved := make([]entity.Attendance, 0, len(input.Kayitlar))
	for _, k := range input.Kayitlar {
		saved = append(saved, entity.Attendance{
			PersonelID: k.PersonelID,
			Tarih:      input.Tarih,
			Durum:      k.Durum,
			GirisSaati: k.GirisSaati,
			CikisSaati: k.CikisSaati,
			Notlar:     k.Notlar,
		})
	}
	// Sayfanın tamamı tek transaction içinde yazılır
	if err := s.repo.UpsertAll(ctx, saved); err != nil {
		return nil, fmt.Errorf("yoklama kaydedilemedi: %w", err)
	}
	return saved, nil
}

// ListByDate Günün yoklaması
func (s *AttendanceService) ListByDate(ctx context.Context, tarih string) ([]entity.Attendance, error) {
	if _, err := parseDate("tarih", tarih); err != nil {
		return nil, err
	}
	return s.repo.ListByDate(ctx, tarih)
}

// WeekStats Son 7 günün günlük özetleri
func (s *AttendanceService) WeekStats(ctx context.Context) ([]repository.DayStat, error) {
	baslangic := time.Now().AddDate(0, 0, -7).Format(dateLayout)
	return s.repo.StatsSince(ctx, baslangic)
}

var exportHeaders = []string{"Tarih", "Personel", "Pozisyon", "Durum", "Giriş", "Çıkış", "Notlar"}

// ExportMonth Ayın yoklama çizelgesini Excel dosyası olarak üretir
func (s *AttendanceService) ExportMonth(ctx context.Context, ay string) (*excelize.File, string, error) {
	if err := parseMonth(ay); err != nil {
		return nil, "", err
	}
	kayitlar, err := s.repo.ListByMonth(ctx, ay)
	if err != nil {
		return nil, "", fmt.Errorf("yoklama kayıtları okunamadı: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Devam"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for i, h := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, k := range kayitlar {
		row := rowIdx + 2
		adi, pozisyon := "", ""
		if k.Personel != nil {
			adi = k.Personel.PersonelAdi
			pozisyon = k.Personel.Pozisyon
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), k.Tarih)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), adi)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), pozisyon)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), k.Durum)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), k.GirisSaati)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), k.CikisSaati)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), k.Notlar)
	}
	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 24)
	f.SetColWidth(sheet, "G", "G", 32)

	filename := fmt.Sprintf("devam_%s.xlsx", ay)
	return f, filename, nil
}
