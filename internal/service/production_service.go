package service

import (
	"context"
	"fmt"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
)

// ProductionService Üretim servisi
type ProductionService struct {
	repo *repository.ProductionRepository
}

func NewProductionService(repo *repository.ProductionRepository) *ProductionService {
	return &ProductionService{repo: repo}
}

// CreateProductionInput Üretim oluşturma isteği
type CreateProductionInput struct {
	SeraAdi       string  `json:"sera_adi" binding:"required"`
	UrunAdi       string  `json:"urun_adi" binding:"required"`
	EkimTarihi    string  `json:"ekim_tarihi" binding:"required"`
	HasatTarihi   string  `json:"hasat_tarihi"`
	Alan          float64 `json:"alan" binding:"gte=0"`
	BeklenenVerim float64 `json:"beklenen_verim" binding:"gte=0"`
	Notlar        string  `json:"notlar"`
}

// validateDates Hasat tarihi ekim tarihinden önce olamaz
func validateDates(ekim, hasat string) error {
	ekimT, err := parseDate("ekim_tarihi", ekim)
	if err != nil {
		return err
	}
	if hasat == "" {
		return nil
	}
	hasatT, err := parseDate("hasat_tarihi", hasat)
	if err != nil {
		return err
	}
	if hasatT.Before(ekimT) {
		return fmt.Errorf("%w: hasat tarihi ekim tarihinden önce olamaz", ErrValidation)
	}
	return nil
}

func (s *ProductionService) Create(ctx context.Context, input *CreateProductionInput) (*entity.Production, error) {
	if err := validateDates(input.EkimTarihi, input.HasatTarihi); err != nil {
		return nil, err
	}
	p := &entity.Production{
		SeraAdi:       input.SeraAdi,
		UrunAdi:       input.UrunAdi,
		EkimTarihi:    input.EkimTarihi,
		HasatTarihi:   input.HasatTarihi,
		Durum:         entity.ProductionStatusPlanted,
		Alan:          input.Alan,
		BeklenenVerim: input.BeklenenVerim,
		Notlar:        input.Notlar,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("üretim kaydı oluşturulamadı: %w", err)
	}
	return p, nil
}

func (s *ProductionService) Get(ctx context.Context, id uint) (*entity.Production, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductionService) List(ctx context.Context, params repository.ProductionListParams) ([]entity.Production, error) {
	return s.repo.List(ctx, params)
}

// UpdateProductionInput Üretim güncelleme isteği
type UpdateProductionInput struct {
	SeraAdi       string  `json:"sera_adi" binding:"required"`
	UrunAdi       string  `json:"urun_adi" binding:"required"`
	EkimTarihi    string  `json:"ekim_tarihi" binding:"required"`
	HasatTarihi   string  `json:"hasat_tarihi"`
	Alan          float64 `json:"alan" binding:"gte=0"`
	BeklenenVerim float64 `json:"beklenen_verim" binding:"gte=0"`
	Notlar        string  `json:"notlar"`
}

func (s *ProductionService) Update(ctx context.Context, id uint, input *UpdateProductionInput) (*entity.Production, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateDates(input.EkimTarihi, input.HasatTarihi); err != nil {
		return nil, err
	}
	p.SeraAdi = input.SeraAdi
	p.UrunAdi = input.UrunAdi
	p.EkimTarihi = input.EkimTarihi
	p.HasatTarihi = input.HasatTarihi
	p.Alan = input.Alan
	p.BeklenenVerim = input.BeklenenVerim
	p.Notlar = input.Notlar
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("üretim kaydı güncellenemedi: %w", err)
	}
	return p, nil
}

// UpdateStatusInput Durum ve gerçekleşen verim güncellemesi
type UpdateStatusInput struct {
	Durum       string   `json:"durum" binding:"required"`
	GercekVerim *float64 `json:"gercek_verim"`
	HasatTarihi string   `json:"hasat_tarihi"`
	Notlar      string   `json:"notlar"`
}

func (s *ProductionService) UpdateStatus(ctx context.Context, id uint, input *UpdateStatusInput) (*entity.Production, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch input.Durum {
	case entity.ProductionStatusPlanted, entity.ProductionStatusGrowing,
		entity.ProductionStatusFlowering, entity.ProductionStatusHarvested:
	default:
		return nil, fmt.Errorf("%w: geçersiz üretim durumu: %s", ErrValidation, input.Durum)
	}
	if input.GercekVerim != nil && *input.GercekVerim < 0 {
		return nil, fmt.Errorf("%w: gerçek verim negatif olamaz", ErrValidation)
	}
	if input.HasatTarihi != "" {
		if err := validateDates(p.EkimTarihi, input.HasatTarihi); err != nil {
			return nil, err
		}
		p.HasatTarihi = input.HasatTarihi
	}
	p.Durum = input.Durum
	if input.GercekVerim != nil {
		p.GercekVerim = input.GercekVerim
	}
	if input.Notlar != "" {
		p.Notlar = input.Notlar
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("üretim durumu güncellenemedi: %w", err)
	}
	return p, nil
}

func (s *ProductionService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
