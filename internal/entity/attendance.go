package entity

import (
	"time"
)

// Devam durumları
const (
	AttendancePresent = "Geldi"
	AttendanceAbsent  = "Gelmedi"
	AttendanceLeave   = "İzinli"
	AttendanceSick    = "Rapor"
)

// ValidAttendanceStatus Durum sabit kümede mi
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave, AttendanceSick:
		return true
	}
	return false
}

// Attendance Günlük yoklama kaydı. Personel başına günde tek satır.
type Attendance struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PersonelID uint      `json:"personel_id" gorm:"not null;uniqueIndex:idx_devam_personel_tarih"`
	Tarih      string    `json:"tarih" gorm:"size:10;not null;uniqueIndex:idx_devam_personel_tarih"` // YYYY-MM-DD
	Durum      string    `json:"durum" gorm:"size:20;not null"`
	GirisSaati string    `json:"giris_saati" gorm:"size:5"`
	CikisSaati string    `json:"cikis_saati" gorm:"size:5"`
	Notlar     string    `json:"notlar" gorm:"type:text"`
	CreatedAt  time.Time `json:"olusturma_tarihi"`
	UpdatedAt  time.Time `json:"guncelleme_tarihi"`

	Personel *Personnel `json:"personel,omitempty" gorm:"foreignKey:PersonelID"`
}

func (Attendance) TableName() string {
	return "devam"
}
