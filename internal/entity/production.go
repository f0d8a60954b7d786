package entity

import (
	"time"
)

// Üretim durumları
const (
	ProductionStatusPlanted   = "Ekim Yapıldı"
	ProductionStatusGrowing   = "Büyüme Döneminde"
	ProductionStatusFlowering = "Çiçeklenme"
	ProductionStatusHarvested = "Hasat Edildi"
)

// ActiveProductionStatuses Dashboard'da aktif sayılan durumlar
var ActiveProductionStatuses = []string{
	ProductionStatusPlanted,
	ProductionStatusGrowing,
	ProductionStatusFlowering,
}

// Production Üretim kaydı (sera + ürün + ekim/hasat dönemi)
type Production struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	SeraAdi       string    `json:"sera_adi" gorm:"size:100;not null;index"`
	UrunAdi       string    `json:"urun_adi" gorm:"size:100;not null"`
	EkimTarihi    string    `json:"ekim_tarihi" gorm:"size:10;not null;index"` // YYYY-MM-DD
	HasatTarihi   string    `json:"hasat_tarihi" gorm:"size:10"`
	Durum         string    `json:"durum" gorm:"size:30;not null;default:Ekim Yapıldı"`
	Alan          float64   `json:"alan"`
	BeklenenVerim float64   `json:"beklenen_verim"`
	GercekVerim   *float64  `json:"gercek_verim"`
	Notlar        string    `json:"notlar" gorm:"type:text"`
	CreatedAt     time.Time `json:"olusturma_tarihi"`
	UpdatedAt     time.Time `json:"guncelleme_tarihi"`
}

func (Production) TableName() string {
	return "uretim"
}

// IsActive Hasat edilmemiş üretim mi
func (p *Production) IsActive() bool {
	return p.Durum != ProductionStatusHarvested
}
