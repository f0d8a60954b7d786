package repository

import (
	"context"
	"errors"

	"github.com/alican7645/FarmFlow/internal/entity"
	"gorm.io/gorm"
)

// HarvestRepository Hasat deposu
type HarvestRepository struct {
	db *gorm.DB
}

func NewHarvestRepository(db *gorm.DB) *HarvestRepository {
	return &HarvestRepository{db: db}
}

func (r *HarvestRepository) Create(ctx context.Context, h *entity.Harvest) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HarvestRepository) FindByID(ctx context.Context, id uint) (*entity.Harvest, error) {
	var h entity.Harvest
	err := r.db.WithContext(ctx).
		Preload("Uretim").Preload("Personel").
		First(&h, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HarvestRepository) Update(ctx context.Context, h *entity.Harvest) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HarvestRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Harvest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HarvestListParams Hasat listesi filtreleri
type HarvestListParams struct {
	Ay         string // YYYY-MM
	PersonelID uint
	UretimID   uint
}

// List Hasat tarihine göre azalan sıralı liste
func (r *HarvestRepository) List(ctx context.Context, params HarvestListParams) ([]entity.Harvest, error) {
	query := r.db.WithContext(ctx).Model(&entity.Harvest{}).
		Preload("Uretim").Preload("Personel")
	if params.Ay != "" {
		query = query.Where("hasat_tarihi LIKE ?", params.Ay+"%")
	}
	if params.PersonelID != 0 {
		query = query.Where("personel_id = ?", params.PersonelID)
	}
	if params.UretimID != 0 {
		query = query.Where("uretim_id = ?", params.UretimID)
	}
	var items []entity.Harvest
	err := query.Order("hasat_tarihi DESC").Find(&items).Error
	return items, err
}

// MonthTotal Belirli aydaki toplam hasat miktarı
func (r *HarvestRepository) MonthTotal(ctx context.Context, ay string) (float64, error) {
	var result struct{ Total float64 }
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(hasat_miktari), 0) AS total
		FROM hasat
		WHERE hasat_tarihi LIKE ?
	`, ay+"%").Scan(&result).Error
	return result.Total, err
}

// HarvesterStat Aylık hasatçı istatistiği
type HarvesterStat struct {
	PersonelID   uint    `json:"personel_id"`
	PersonelAdi  string  `json:"personel_adi"`
	HasatSayisi  int     `json:"hasat_sayisi"`
	ToplamMiktar float64 `json:"toplam_miktar"`
}

// TopHarvesters Ayın en çok hasat yapan personeli
func (r *HarvestRepository) TopHarvesters(ctx context.Context, ay string, limit int) ([]HarvesterStat, error) {
	var stats []HarvesterStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT h.personel_id,
		       p.personel_adi,
		       COUNT(*) AS hasat_sayisi,
		       SUM(h.hasat_miktari) AS toplam_miktar
		FROM hasat h
		LEFT JOIN personel p ON p.id = h.personel_id
		WHERE h.hasat_tarihi LIKE ?
		GROUP BY h.personel_id, p.personel_adi
		ORDER BY toplam_miktar DESC
		LIMIT ?
	`, ay+"%", limit).Scan(&stats).Error
	return stats, err
}
