package repository

import (
	"context"
	"errors"

	"github.com/alican7645/FarmFlow/internal/entity"
	"gorm.io/gorm"
)

// TaskRepository Görev deposu
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var t entity.Task
	err := r.db.WithContext(ctx).Preload("Personel").First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TaskListParams Görev listesi filtreleri
type TaskListParams struct {
	PersonelID uint
	Ay         string // YYYY-MM
	Durum      string
}

// List Tarihe göre azalan sıralı görev listesi
func (r *TaskRepository) List(ctx context.Context, params TaskListParams) ([]entity.Task, error) {
	query := r.db.WithContext(ctx).Model(&entity.Task{}).Preload("Personel")
	if params.PersonelID != 0 {
		query = query.Where("personel_id = ?", params.PersonelID)
	}
	if params.Ay != "" {
		query = query.Where("tarih LIKE ?", params.Ay+"%")
	}
	if params.Durum != "" {
		query = query.Where("durum = ?", params.Durum)
	}
	var items []entity.Task
	err := query.Order("tarih DESC").Find(&items).Error
	return items, err
}
