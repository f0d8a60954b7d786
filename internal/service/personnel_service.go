package service

import (
	"context"
	"fmt"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
)

// PersonnelService Personel servisi
type PersonnelService struct {
	repo *repository.PersonnelRepository
}

func NewPersonnelService(repo *repository.PersonnelRepository) *PersonnelService {
	return &PersonnelService{repo: repo}
}

// CreatePersonnelInput Personel kaydı isteği
type CreatePersonnelInput struct {
	PersonelAdi      string  `json:"personel_adi" binding:"required"`
	Pozisyon         string  `json:"pozisyon"`
	AylikMaas        float64 `json:"aylik_maas" binding:"gte=0"`
	IseBaslamaTarihi string  `json:"ise_baslama_tarihi"`
	Telefon          string  `json:"telefon"`
	Notlar           string  `json:"notlar"`
}

func (s *PersonnelService) Create(ctx context.Context, input *CreatePersonnelInput) (*entity.Personnel, error) {
	if input.IseBaslamaTarihi != "" {
		if _, err := parseDate("ise_baslama_tarihi", input.IseBaslamaTarihi); err != nil {
			return nil, err
		}
	}
	p := &entity.Personnel{
		PersonelAdi:      input.PersonelAdi,
		Pozisyon:         input.Pozisyon,
		AylikMaas:        input.AylikMaas,
		IseBaslamaTarihi: input.IseBaslamaTarihi,
		Aktif:            true,
		Telefon:          input.Telefon,
		Notlar:           input.Notlar,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("personel kaydı oluşturulamadı: %w", err)
	}
	return p, nil
}

func (s *PersonnelService) Get(ctx context.Context, id uint) (*entity.Personnel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PersonnelService) List(ctx context.Context, sadeceAktif bool) ([]entity.Personnel, error) {
	return s.repo.List(ctx, sadeceAktif)
}

// UpdatePersonnelInput Personel güncelleme isteği
type UpdatePersonnelInput struct {
	PersonelAdi      string  `json:"personel_adi" binding:"required"`
	Pozisyon         string  `json:"pozisyon"`
	AylikMaas        float64 `json:"aylik_maas" binding:"gte=0"`
	IseBaslamaTarihi string  `json:"ise_baslama_tarihi"`
	Aktif            *bool   `json:"aktif"`
	Telefon          string  `json:"telefon"`
	Notlar           string  `json:"notlar"`
}

func (s *PersonnelService) Update(ctx context.Context, id uint, input *UpdatePersonnelInput) (*entity.Personnel, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.IseBaslamaTarihi != "" {
		if _, err := parseDate("ise_baslama_tarihi", input.IseBaslamaTarihi); err != nil {
			return nil, err
		}
	}
	p.PersonelAdi = input.PersonelAdi
	p.Pozisyon = input.Pozisyon
	p.AylikMaas = input.AylikMaas
	p.IseBaslamaTarihi = input.IseBaslamaTarihi
	if input.Aktif != nil {
		p.Aktif = *input.Aktif
	}
	p.Telefon = input.Telefon
	p.Notlar = input.Notlar
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("personel kaydı güncellenemedi: %w", err)
	}
	return p, nil
}

func (s *PersonnelService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// MonthlyCost Aktif personelin aylık maliyeti
func (s *PersonnelService) MonthlyCost(ctx context.Context) (float64, error) {
	return s.repo.MonthlyCost(ctx)
}
