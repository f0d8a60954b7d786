package repository

import (
	"context"
	"errors"

	"github.com/alican7645/FarmFlow/internal/entity"
	"gorm.io/gorm"
)

// ProductionRepository Üretim deposu
type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

func (r *ProductionRepository) Create(ctx context.Context, p *entity.Production) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductionRepository) FindByID(ctx context.Context, id uint) (*entity.Production, error) {
	var p entity.Production
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductionRepository) Update(ctx context.Context, p *entity.Production) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Production{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ProductionListParams Üretim listesi filtreleri
type ProductionListParams struct {
	Durum       string
	SeraAdi     string
	Baslangic   string // ekim tarihi alt sınır, YYYY-MM-DD
	Bitis       string // ekim tarihi üst sınır
	SadeceAktif bool
}

// List Ekim tarihine göre azalan sıralı üretim listesi
func (r *ProductionRepository) List(ctx context.Context, params ProductionListParams) ([]entity.Production, error) {
	query := r.db.WithContext(ctx).Model(&entity.Production{})
	if params.Durum != "" {
		query = query.Where("durum = ?", params.Durum)
	}
	if params.SeraAdi != "" {
		query = query.Where("sera_adi = ?", params.SeraAdi)
	}
	if params.Baslangic != "" {
		query = query.Where("ekim_tarihi >= ?", params.Baslangic)
	}
	if params.Bitis != "" {
		query = query.Where("ekim_tarihi <= ?", params.Bitis)
	}
	if params.SadeceAktif {
		query = query.Where("durum <> ?", entity.ProductionStatusHarvested)
	}
	var items []entity.Production
	err := query.Order("ekim_tarihi DESC").Find(&items).Error
	return items, err
}

// CountActive Aktif üretim sayısı (dashboard)
func (r *ProductionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Production{}).
		Where("durum IN ?", entity.ActiveProductionStatuses).
		Count(&count).Error
	return count, err
}

// CountGreenhouses Kayıtlı farklı sera sayısı
func (r *ProductionRepository) CountGreenhouses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Production{}).
		Distinct("sera_adi").Count(&count).Error
	return count, err
}
