package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alican7645/FarmFlow/internal/entity"
	"gorm.io/gorm"
)

// UserRepository Kullanıcı ve giriş kaydı deposu
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, kullaniciAdi string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("kullanici_adi = ?", kullaniciAdi).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).Order("kullanici_adi").Find(&users).Error
	return users, err
}

// Count Kayıtlı kullanıcı sayısı (ilk kurulum kontrolü)
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

// TouchLastLogin Son giriş zamanını günceller
func (r *UserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&entity.User{}).
		Where("id = ?", id).
		Update("son_giris", &now).Error
}

// LogAttempt Giriş denemesini kaydeder, sonuçtan bağımsız olarak çağrılır
func (r *UserRepository) LogAttempt(ctx context.Context, a *entity.LoginAttempt) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListAttempts Giriş denemeleri, yeniden eskiye
func (r *UserRepository) ListAttempts(ctx context.Context, kullaniciAdi string, limit int) ([]entity.LoginAttempt, error) {
	query := r.db.WithContext(ctx).Model(&entity.LoginAttempt{})
	if kullaniciAdi != "" {
		query = query.Where("kullanici_adi = ?", kullaniciAdi)
	}
	if limit <= 0 {
		limit = 100
	}
	var items []entity.LoginAttempt
	err := query.Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}
