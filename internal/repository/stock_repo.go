package repository

import (
	"context"
	"errors"

	"github.com/alican7645/FarmFlow/internal/entity"
	"gorm.io/gorm"
)

// StockRepository Stok deposu
type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

func (r *StockRepository) Create(ctx context.Context, s *entity.StockItem) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StockRepository) FindByID(ctx context.Context, id uint) (*entity.StockItem, error) {
	var s entity.StockItem
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByNameAndDepot Aynı malzeme + depo kaydı var mı (tekrarlı girişler birleştirilir)
func (r *StockRepository) FindByNameAndDepot(ctx context.Context, malzemeAdi, depo string) (*entity.StockItem, error) {
	var s entity.StockItem
	err := r.db.WithContext(ctx).
		Where("malzeme_adi = ? AND depo = ?", malzemeAdi, depo).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *StockRepository) Update(ctx context.Context, s *entity.StockItem) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StockRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.StockItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StockListParams Stok listesi filtreleri
type StockListParams struct {
	Kategori string
	Depo     string
	Kritik   bool
}

// List Malzeme adına göre sıralı stok listesi
func (r *StockRepository) List(ctx context.Context, params StockListParams) ([]entity.StockItem, error) {
	query := r.db.WithContext(ctx).Model(&entity.StockItem{})
	if params.Kategori != "" {
		query = query.Where("kategori = ?", params.Kategori)
	}
	if params.Depo != "" {
		query = query.Where("depo = ?", params.Depo)
	}
	if params.Kritik {
		query = query.Where("miktar < min_stok")
	}
	var items []entity.StockItem
	err := query.Order("malzeme_adi").Find(&items).Error
	return items, err
}

// LowStock Kritik stok listesi: miktar eşiğin altında
func (r *StockRepository) LowStock(ctx context.Context) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := r.db.WithContext(ctx).
		Where("miktar < min_stok").
		Order("malzeme_adi").
		Find(&items).Error
	return items, err
}

// CountLow Kritik stok sayısı (dashboard)
func (r *StockRepository) CountLow(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.StockItem{}).
		Where("miktar < min_stok").
		Count(&count).Error
	return count, err
}

// CreateMovement Hareket kaydı ekler
func (r *StockRepository) CreateMovement(ctx context.Context, m *entity.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListMovements Kalemin hareket geçmişi
func (r *StockRepository) ListMovements(ctx context.Context, stokID uint) ([]entity.StockMovement, error) {
	var items []entity.StockMovement
	err := r.db.WithContext(ctx).
		Where("stok_id = ?", stokID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// CategoryValue Kategori bazlı stok değeri (rapor)
type CategoryValue struct {
	Kategori    string  `json:"kategori"`
	CesitSayisi int     `json:"cesit_sayisi"`
	ToplamDeger float64 `json:"toplam_deger"`
}

// ValueByCategory Kategorilere göre stok değeri raporu
func (r *StockRepository) ValueByCategory(ctx context.Context) ([]CategoryValue, error) {
	var rows []CategoryValue
	err := r.db.WithContext(ctx).Raw(`
		SELECT kategori,
		       COUNT(*) AS cesit_sayisi,
		       SUM(miktar * maliyet) AS toplam_deger
		FROM stok
		WHERE kategori IS NOT NULL AND kategori <> ''
		GROUP BY kategori
		ORDER BY toplam_deger DESC
	`).Scan(&rows).Error
	return rows, err
}

// DB Transaction için alttaki bağlantı
func (r *StockRepository) DB() *gorm.DB {
	return r.db
}
