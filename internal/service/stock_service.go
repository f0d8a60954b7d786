package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
	"gorm.io/gorm"
)

// StockService Stok servisi
type StockService struct {
	repo *repository.StockRepository
}

func NewStockService(repo *repository.StockRepository) *StockService {
	return &StockService{repo: repo}
}

// CreateStockInput Stok kalemi isteği
type CreateStockInput struct {
	MalzemeAdi string  `json:"malzeme_adi" binding:"required"`
	Kategori   string  `json:"kategori"`
	Miktar     float64 `json:"miktar" binding:"gte=0"`
	Birim      string  `json:"birim"`
	Depo       string  `json:"depo"`
	MinStok    float64 `json:"min_stok" binding:"gte=0"`
	Maliyet    float64 `json:"maliyet" binding:"gte=0"`
	Notlar     string  `json:"notlar"`
}

// Create Yeni stok kalemi açar. Aynı malzeme aynı depoda zaten varsa
// yeni satır açmak yerine mevcut miktara ekler.
func (s *StockService) Create(ctx context.Context, input *CreateStockInput) (*entity.StockItem, error) {
	bugun := time.Now().Format(dateLayout)

	mevcut, err := s.repo.FindByNameAndDepot(ctx, input.MalzemeAdi, input.Depo)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if mevcut != nil {
		mevcut.Miktar += input.Miktar
		mevcut.MinStok = input.MinStok
		mevcut.Maliyet = input.Maliyet
		mevcut.Tarih = bugun
		if input.Notlar != "" {
			mevcut.Notlar = input.Notlar
		}
		if err := s.repo.Update(ctx, mevcut); err != nil {
			return nil, fmt.Errorf("stok güncellenemedi: %w", err)
		}
		return mevcut, nil
	}

	item := &entity.StockItem{
		MalzemeAdi: input.MalzemeAdi,
		Kategori:   input.Kategori,
		Miktar:     input.Miktar,
		Birim:      input.Birim,
		Depo:       input.Depo,
		MinStok:    input.MinStok,
		Maliyet:    input.Maliyet,
		Tarih:      bugun,
		Notlar:     input.Notlar,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("stok kaydı oluşturulamadı: %w", err)
	}
	return item, nil
}

func (s *StockService) Get(ctx context.Context, id uint) (*entity.StockItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StockService) List(ctx context.Context, params repository.StockListParams) ([]entity.StockItem, error) {
	return s.repo.List(ctx, params)
}

// LowStock Kritik seviyedeki kalemler
func (s *StockService) LowStock(ctx context.Context) ([]entity.StockItem, error) {
	return s.repo.LowStock(ctx)
}

func (s *StockService) Update(ctx context.Context, id uint, input *CreateStockInput) (*entity.StockItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.MalzemeAdi = input.MalzemeAdi
	item.Kategori = input.Kategori
	item.Miktar = input.Miktar
	item.Birim = input.Birim
	item.Depo = input.Depo
	item.MinStok = input.MinStok
	item.Maliyet = input.Maliyet
	item.Notlar = input.Notlar
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("stok kaydı güncellenemedi: %w", err)
	}
	return item, nil
}

func (s *StockService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// MovementInput Stok hareketi isteği
type MovementInput struct {
	Yon      string  `json:"yon" binding:"required"`
	Miktar   float64 `json:"miktar" binding:"required,gt=0"`
	Referans string  `json:"referans"`
	Notlar   string  `json:"notlar"`
}

// Move Stok giriş/çıkış hareketi uygular. Bakiye güncellemesi ve hareket
// kaydı tek transaction içinde yazılır; yetersiz bakiye çıkışı reddedilir.
func (s *StockService) Move(ctx context.Context, id uint, input *MovementInput, userID uint) (*entity.StockItem, error) {
	if input.Yon != entity.MovementIn && input.Yon != entity.MovementOut {
		return nil, fmt.Errorf("%w: yön 'giris' veya 'cikis' olmalı", ErrValidation)
	}

	var item *entity.StockItem
	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st entity.StockItem
		if err := tx.First(&st, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		switch input.Yon {
		case entity.MovementIn:
			st.Miktar += input.Miktar
		case entity.MovementOut:
			if st.Miktar < input.Miktar {
				return fmt.Errorf("%w: yetersiz stok, mevcut miktar: %g", ErrValidation, st.Miktar)
			}
			st.Miktar -= input.Miktar
		}
		st.Tarih = time.Now().Format(dateLayout)
		if err := tx.Save(&st).Error; err != nil {
			return err
		}

		hareket := &entity.StockMovement{
			StokID:    st.ID,
			Yon:       input.Yon,
			Miktar:    input.Miktar,
			Referans:  input.Referans,
			Notlar:    input.Notlar,
			CreatedBy: userID,
		}
		if err := tx.Create(hareket).Error; err != nil {
			return err
		}
		item = &st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Movements Kalemin hareket geçmişi
func (s *StockService) Movements(ctx context.Context, id uint) ([]entity.StockMovement, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListMovements(ctx, id)
}
