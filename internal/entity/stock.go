package entity

import (
	"time"
)

// Stok hareket yönleri
const (
	MovementIn  = "giris"
	MovementOut = "cikis"
)

// StockItem Stok kalemi
type StockItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	MalzemeAdi string    `json:"malzeme_adi" gorm:"size:100;not null;index"`
	Kategori   string    `json:"kategori" gorm:"size:50;index"`
	Miktar     float64   `json:"miktar" gorm:"not null"`
	Birim      string    `json:"birim" gorm:"size:20"`
	Depo       string    `json:"depo" gorm:"size:50"`
	MinStok    float64   `json:"min_stok"`
	Maliyet    float64   `json:"maliyet"`
	Tarih      string    `json:"tarih" gorm:"size:10"` // son işlem tarihi, YYYY-MM-DD
	Notlar     string    `json:"notlar" gorm:"type:text"`
	CreatedAt  time.Time `json:"olusturma_tarihi"`
	UpdatedAt  time.Time `json:"guncelleme_tarihi"`
}

func (StockItem) TableName() string {
	return "stok"
}

// IsLow Kritik stok kontrolü: mevcut miktar eşiğin altında mı
func (s *StockItem) IsLow() bool {
	return s.Miktar < s.MinStok
}

// StockMovement Stok giriş/çıkış hareketi
type StockMovement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StokID    uint      `json:"stok_id" gorm:"not null;index"`
	Yon       string    `json:"yon" gorm:"size:10;not null"` // giris | cikis
	Miktar    float64   `json:"miktar" gorm:"not null"`
	Referans  string    `json:"referans" gorm:"size:100"`
	Notlar    string    `json:"notlar" gorm:"type:text"`
	CreatedBy uint      `json:"olusturan_id"`
	CreatedAt time.Time `json:"olusturma_tarihi"`

	Stok *StockItem `json:"stok,omitempty" gorm:"foreignKey:StokID"`
}

func (StockMovement) TableName() string {
	return "stok_hareket"
}
