package entity

import (
	"time"
)

// Harvest Hasat kaydı
type Harvest struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UretimID      *uint     `json:"uretim_id" gorm:"index"`
	HasatTarihi   string    `json:"hasat_tarihi" gorm:"size:10;not null;index"` // YYYY-MM-DD
	ParselAlan    string    `json:"parsel_alan" gorm:"size:100;not null"`
	HasatMiktari  float64   `json:"hasat_miktari" gorm:"not null"`
	PersonelID    *uint     `json:"personel_id" gorm:"index"`
	TeslimEdilen  string    `json:"teslim_edilen" gorm:"size:100"`
	Notlar        string    `json:"notlar" gorm:"type:text"`
	CreatedAt     time.Time `json:"olusturma_tarihi"`

	Uretim   *Production `json:"uretim,omitempty" gorm:"foreignKey:UretimID"`
	Personel *Personnel  `json:"personel,omitempty" gorm:"foreignKey:PersonelID"`
}

func (Harvest) TableName() string {
	return "hasat"
}
