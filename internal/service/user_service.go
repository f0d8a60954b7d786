package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService Kullanıcı yönetimi servisi (sadece admin erişir)
type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput Kullanıcı oluşturma isteği
type CreateUserInput struct {
	KullaniciAdi string `json:"kullanici_adi" binding:"required,min=3"`
	Sifre        string `json:"sifre" binding:"required,min=8"`
	AdSoyad      string `json:"ad_soyad"`
	Email        string `json:"email"`
	Rol          string `json:"rol"`
}

func validateRole(rol string) error {
	if rol != entity.RoleAdmin && rol != entity.RoleUser {
		return fmt.Errorf("%w: rol 'admin' veya 'kullanici' olmalı", ErrValidation)
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	rol := input.Rol
	if rol == "" {
		rol = entity.RoleUser
	}
	if err := validateRole(rol); err != nil {
		return nil, err
	}

	// Kullanıcı adı benzersiz olmalı
	if _, err := s.repo.FindByUsername(ctx, input.KullaniciAdi); err == nil {
		return nil, fmt.Errorf("%w: bu kullanıcı adı zaten kayıtlı", ErrValidation)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Sifre), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("şifre özetlenemedi: %w", err)
	}
	user := &entity.User{
		KullaniciAdi: input.KullaniciAdi,
		Email:        input.Email,
		PasswordHash: string(hash),
		AdSoyad:      input.AdSoyad,
		Rol:          rol,
		Aktif:        true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*entity.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.repo.List(ctx)
}

// UpdateUserInput Kullanıcı güncelleme isteği; şifre boşsa değişmez
type UpdateUserInput struct {
	AdSoyad string `json:"ad_soyad"`
	Email   string `json:"email"`
	Rol     string `json:"rol" binding:"required"`
	Aktif   *bool  `json:"aktif"`
	Sifre   string `json:"sifre"`
}

func (s *UserService) Update(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateRole(input.Rol); err != nil {
		return nil, err
	}
	user.AdSoyad = input.AdSoyad
	user.Email = input.Email
	user.Rol = input.Rol
	if input.Aktif != nil {
		user.Aktif = *input.Aktif
	}
	if input.Sifre != "" {
		if len(input.Sifre) < 8 {
			return nil, fmt.Errorf("%w: şifre en az 8 karakter olmalı", ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Sifre), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("şifre özetlenemedi: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// LoginAttempts Giriş denemeleri (denetim için)
func (s *UserService) LoginAttempts(ctx context.Context, kullaniciAdi string, limit int) ([]entity.LoginAttempt, error) {
	return s.repo.ListAttempts(ctx, kullaniciAdi, limit)
}
