package entity

import (
	"time"
)

// Görev durumları
const (
	TaskStatusOpen = "Açık"
	TaskStatusDone = "Tamamlandı"
)

// Task Personele atanmış görev
type Task struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PersonelID uint      `json:"personel_id" gorm:"not null;index"`
	Gorev      string    `json:"gorev" gorm:"type:text;not null"`
	Tarih      string    `json:"tarih" gorm:"size:10;not null;index"` // YYYY-MM-DD
	SeraAdi    string    `json:"sera_adi" gorm:"size:100"`
	Durum      string    `json:"durum" gorm:"size:20;not null;default:Açık"`
	Notlar     string    `json:"notlar" gorm:"type:text"`
	CreatedAt  time.Time `json:"olusturma_tarihi"`
	UpdatedAt  time.Time `json:"guncelleme_tarihi"`

	Personel *Personnel `json:"personel,omitempty" gorm:"foreignKey:PersonelID"`
}

func (Task) TableName() string {
	return "gorevler"
}
