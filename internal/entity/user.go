package entity

import (
	"time"
)

// Kullanıcı rolleri
const (
	RoleAdmin = "admin"
	RoleUser  = "kullanici"
)

// User Panel kullanıcısı
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	KullaniciAdi string     `json:"kullanici_adi" gorm:"size:80;not null;uniqueIndex"`
	Email        string     `json:"email" gorm:"size:120"`
	PasswordHash string     `json:"-" gorm:"size:256;not null"`
	AdSoyad      string     `json:"ad_soyad" gorm:"size:100"`
	Rol          string     `json:"rol" gorm:"size:20;not null;default:kullanici"`
	Aktif        bool       `json:"aktif" gorm:"default:true"`
	SonGiris     *time.Time `json:"son_giris"`
	CreatedAt    time.Time  `json:"olusturma_tarihi"`
	UpdatedAt    time.Time  `json:"guncelleme_tarihi"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin Yönetici mi
func (u *User) IsAdmin() bool {
	return u.Rol == RoleAdmin
}

// LoginAttempt Giriş denemesi kaydı. Sadece eklenir, güncellenmez.
type LoginAttempt struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	KullaniciAdi string    `json:"kullanici_adi" gorm:"size:80;not null;index"`
	IPAdresi     string    `json:"ip_adresi" gorm:"size:45"`
	Basarili     bool      `json:"basarili" gorm:"default:false"`
	CreatedAt    time.Time `json:"deneme_tarihi"`
}

func (LoginAttempt) TableName() string {
	return "login_attempts"
}
