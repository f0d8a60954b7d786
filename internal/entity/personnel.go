package entity

import (
	"time"
)

// Personnel Personel kaydı
type Personnel struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	PersonelAdi      string    `json:"personel_adi" gorm:"size:100;not null"`
	Pozisyon         string    `json:"pozisyon" gorm:"size:50"`
	AylikMaas        float64   `json:"aylik_maas"`
	IseBaslamaTarihi string    `json:"ise_baslama_tarihi" gorm:"size:10"`
	Aktif            bool      `json:"aktif" gorm:"default:true"`
	Telefon          string    `json:"telefon" gorm:"size:20"`
	Notlar           string    `json:"notlar" gorm:"type:text"`
	CreatedAt        time.Time `json:"olusturma_tarihi"`
	UpdatedAt        time.Time `json:"guncelleme_tarihi"`
}

func (Personnel) TableName() string {
	return "personel"
}
