package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
)

// HarvestService Hasat servisi
type HarvestService struct {
	repo       *repository.HarvestRepository
	uretimRepo *repository.ProductionRepository
	persRepo   *repository.PersonnelRepository
}

func NewHarvestService(repo *repository.HarvestRepository, uretimRepo *repository.ProductionRepository, persRepo *repository.PersonnelRepository) *HarvestService {
	return &HarvestService{repo: repo, uretimRepo: uretimRepo, persRepo: persRepo}
}

// CreateHarvestInput Hasat kaydı isteği
type CreateHarvestInput struct {
	UretimID     *uint   `json:"uretim_id"`
	HasatTarihi  string  `json:"hasat_tarihi" binding:"required"`
	ParselAlan   string  `json:"parsel_alan" binding:"required"`
	HasatMiktari float64 `json:"hasat_miktari" binding:"gte=0"`
	PersonelID   *uint   `json:"personel_id"`
	TeslimEdilen string  `json:"teslim_edilen"`
	Notlar       string  `json:"notlar"`
}

// checkRefs Üretim ve personel referanslarını doğrular
func (s *HarvestService) checkRefs(ctx context.Context, uretimID, personelID *uint) error {
	if uretimID != nil {
		if _, err := s.uretimRepo.FindByID(ctx, *uretimID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: üretim kaydı bulunamadı: %d", ErrValidation, *uretimID)
			}
			return err
		}
	}
	if personelID != nil {
		if _, err := s.persRepo.FindByID(ctx, *personelID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: personel bulunamadı: %d", ErrValidation, *personelID)
			}
			return err
		}
	}
	return nil
}

func (s *HarvestService) Create(ctx context.Context, input *CreateHarvestInput) (*entity.Harvest, error) {
	if _, err := parseDate("hasat_tarihi", input.HasatTarihi); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, input.UretimID, input.PersonelID); err != nil {
		return nil, err
	}
	h := &entity.Harvest{
		UretimID:     input.UretimID,
		HasatTarihi:  input.HasatTarihi,
		ParselAlan:   input.ParselAlan,
		HasatMiktari: input.HasatMiktari,
		PersonelID:   input.PersonelID,
		TeslimEdilen: input.TeslimEdilen,
		Notlar:       input.Notlar,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("hasat kaydı oluşturulamadı: %w", err)
	}
	return h, nil
}

func (s *HarvestService) Get(ctx context.Context, id uint) (*entity.Harvest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HarvestService) List(ctx context.Context, params repository.HarvestListParams) ([]entity.Harvest, error) {
	if params.Ay != "" {
		if err := parseMonth(params.Ay); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, params)
}

func (s *HarvestService) Update(ctx context.Context, id uint, input *CreateHarvestInput) (*entity.Harvest, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := parseDate("hasat_tarihi", input.HasatTarihi); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, input.UretimID, input.PersonelID); err != nil {
		return nil, err
	}
	h.UretimID = input.UretimID
	h.HasatTarihi = input.HasatTarihi
	h.ParselAlan = input.ParselAlan
	h.HasatMiktari = input.HasatMiktari
	h.PersonelID = input.PersonelID
	h.TeslimEdilen = input.TeslimEdilen
	h.Notlar = input.Notlar
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("hasat kaydı güncellenemedi: %w", err)
	}
	return h, nil
}

func (s *HarvestService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// MonthStats Ayın hasat özeti
type MonthStats struct {
	Ay           string                     `json:"ay"`
	ToplamMiktar float64                    `json:"toplam_miktar"`
	EnIyiler     []repository.HarvesterStat `json:"en_iyiler"`
}

// Stats Ay toplamı ve en çok hasat yapanlar
func (s *HarvestService) Stats(ctx context.Context, ay string) (*MonthStats, error) {
	if err := parseMonth(ay); err != nil {
		return nil, err
	}
	total, err := s.repo.MonthTotal(ctx, ay)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.TopHarvesters(ctx, ay, 5)
	if err != nil {
		return nil, err
	}
	return &MonthStats{Ay: ay, ToplamMiktar: total, EnIyiler: top}, nil
}
