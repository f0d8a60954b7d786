package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
)

// TaskService Görev servisi
type TaskService struct {
	repo     *repository.TaskRepository
	persRepo *repository.PersonnelRepository
}

func NewTaskService(repo *repository.TaskRepository, persRepo *repository.PersonnelRepository) *TaskService {
	return &TaskService{repo: repo, persRepo: persRepo}
}

// CreateTaskInput Görev isteği
type CreateTaskInput struct {
	PersonelID uint   `json:"personel_id" binding:"required"`
	Gorev      string `json:"gorev" binding:"required"`
	Tarih      string `json:"tarih" binding:"required"`
	SeraAdi    string `json:"sera_adi"`
	Notlar     string `json:"notlar"`
}

func (s *TaskService) checkPersonnel(ctx context.Context, personelID uint) error {
	if _, err := s.persRepo.FindByID(ctx, personelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: personel bulunamadı: %d", ErrValidation, personelID)
		}
		return err
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, input *CreateTaskInput) (*entity.Task, error) {
	if _, err := parseDate("tarih", input.Tarih); err != nil {
		return nil, err
	}
	if err := s.checkPersonnel(ctx, input.PersonelID); err != nil {
		return nil, err
	}
	t := &entity.Task{
		PersonelID: input.PersonelID,
		Gorev:      input.Gorev,
		Tarih:      input.Tarih,
		SeraAdi:    input.SeraAdi,
		Durum:      entity.TaskStatusOpen,
		Notlar:     input.Notlar,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("görev oluşturulamadı: %w", err)
	}
	return t, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*entity.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, params repository.TaskListParams) ([]entity.Task, error) {
	if params.Ay != "" {
		if err := parseMonth(params.Ay); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, params)
}

func (s *TaskService) Update(ctx context.Context, id uint, input *CreateTaskInput) (*entity.Task, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := parseDate("tarih", input.Tarih); err != nil {
		return nil, err
	}
	if err := s.checkPersonnel(ctx, input.PersonelID); err != nil {
		return nil, err
	}
	t.PersonelID = input.PersonelID
	t.Gorev = input.Gorev
	t.Tarih = input.Tarih
	t.SeraAdi = input.SeraAdi
	t.Notlar = input.Notlar
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("görev güncellenemedi: %w", err)
	}
	return t, nil
}

// Complete Görevi tamamlandı olarak işaretler
func (s *TaskService) Complete(ctx context.Context, id uint) (*entity.Task, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Durum = entity.TaskStatusDone
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("görev güncellenemedi: %w", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
