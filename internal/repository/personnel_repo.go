package repository

import (
	"context"
	"errors"

	"github.com/alican7645/FarmFlow/internal/entity"
	"gorm.io/gorm"
)

// PersonnelRepository Personel deposu
type PersonnelRepository struct {
	db *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

func (r *PersonnelRepository) Create(ctx context.Context, p *entity.Personnel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PersonnelRepository) FindByID(ctx context.Context, id uint) (*entity.Personnel, error) {
	var p entity.Personnel
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PersonnelRepository) Update(ctx context.Context, p *entity.Personnel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PersonnelRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Personnel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List Aktifler önce, ada göre sıralı personel listesi
func (r *PersonnelRepository) List(ctx context.Context, sadeceAktif bool) ([]entity.Personnel, error) {
	query := r.db.WithContext(ctx).Model(&entity.Personnel{})
	if sadeceAktif {
		query = query.Where("aktif = ?", true)
	}
	var items []entity.Personnel
	err := query.Order("aktif DESC, personel_adi").Find(&items).Error
	return items, err
}

// MonthlyCost Aktif personelin aylık maaş toplamı
func (r *PersonnelRepository) MonthlyCost(ctx context.Context) (float64, error) {
	var result struct{ Total float64 }
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(aylik_maas), 0) AS total
		FROM personel
		WHERE aktif = ?
	`, true).Scan(&result).Error
	return result.Total, err
}
