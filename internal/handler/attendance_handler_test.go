package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/alican7645/FarmFlow/internal/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupAttendanceTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, testutil.TestConfig())
	h := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/devam", h.Attendance.ListByDate)
	api.POST("/devam", h.Attendance.SaveDaySheet)
	api.GET("/devam/istatistik", h.Attendance.WeekStats)
	api.GET("/devam/rapor", h.Attendance.Export)

	return router, db
}

func TestAttendanceDaySheetUpsert(t *testing.T) {
	router, db := setupAttendanceTest(t)
	token := testutil.AdminToken()

	p1 := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)
	p2 := testutil.SeedPersonnel(t, db, "Ayşe Kaya", 19500)

	sheet := map[string]interface{}{
		"tarih": "2025-08-15",
		"kayitlar": []map[string]interface{}{
			{"personel_id": p1.ID, "durum": "Geldi", "giris_saati": "08:00"},
			{"personel_id": p2.ID, "durum": "Gelmedi"},
		},
	}
	w := testutil.DoRequest(router, "POST", "/api/v1/devam", sheet, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Aynı gün ikinci gönderim satır çoğaltmamalı, durumu güncellemeli
	sheet["kayitlar"] = []map[string]interface{}{
		{"personel_id": p2.ID, "durum": "İzinli", "notlar": "yıllık izin"},
	}
	w = testutil.DoRequest(router, "POST", "/api/v1/devam", sheet, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on re-submit, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&entity.Attendance{}).Where("tarih = ?", "2025-08-15").Count(&count)
	if count != 2 {
		t.Fatalf("Expected 2 rows for the day, got %d", count)
	}

	var a entity.Attendance
	db.Where("personel_id = ? AND tarih = ?", p2.ID, "2025-08-15").First(&a)
	if a.Durum != "İzinli" {
		t.Errorf("Expected updated durum 'İzinli', got %q", a.Durum)
	}
	if a.Notlar != "yıllık izin" {
		t.Errorf("Expected updated notlar, got %q", a.Notlar)
	}
}

func TestAttendanceDaySheetRollsBackOnFailure(t *testing.T) {
	_, db := setupAttendanceTest(t)

	p1 := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)
	p2 := testutil.SeedPersonnel(t, db, "Ayşe Kaya", 19500)

	existing := entity.Attendance{PersonelID: p1.ID, Tarih: "2025-08-14", Durum: "Geldi"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("Seeding attendance failed: %v", err)
	}

	// İkinci satır mevcut birincil anahtarla çakışır ve yazımı bozar;
	// ilk satır da kalıcı olmamalı
	repo := repository.NewAttendanceRepository(db)
	rows := []entity.Attendance{
		{PersonelID: p2.ID, Tarih: "2025-08-15", Durum: "Geldi"},
		{ID: existing.ID, PersonelID: p1.ID, Tarih: "2025-08-15", Durum: "Geldi"},
	}
	if err := repo.UpsertAll(context.Background(), rows); err == nil {
		t.Fatal("Expected an error from the conflicting row")
	}

	var count int64
	db.Model(&entity.Attendance{}).Where("tarih = ?", "2025-08-15").Count(&count)
	if count != 0 {
		t.Fatalf("Expected no rows for the day after rollback, got %d", count)
	}
}

func TestAttendanceInvalidStatus(t *testing.T) {
	router, db := setupAttendanceTest(t)
	token := testutil.AdminToken()

	p := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)

	w := testutil.DoRequest(router, "POST", "/api/v1/devam", map[string]interface{}{
		"tarih": "2025-08-15",
		"kayitlar": []map[string]interface{}{
			{"personel_id": p.ID, "durum": "Tatilde"},
		},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAttendanceUnknownPersonnel(t *testing.T) {
	router, _ := setupAttendanceTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/devam", map[string]interface{}{
		"tarih": "2025-08-15",
		"kayitlar": []map[string]interface{}{
			{"personel_id": 999, "durum": "Geldi"},
		},
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAttendanceListByDate(t *testing.T) {
	router, db := setupAttendanceTest(t)
	token := testutil.AdminToken()

	p := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)
	db.Create(&entity.Attendance{PersonelID: p.ID, Tarih: "2025-08-10", Durum: "Geldi"})
	db.Create(&entity.Attendance{PersonelID: p.ID, Tarih: "2025-08-11", Durum: "Rapor"})

	w := testutil.DoRequest(router, "GET", "/api/v1/devam?tarih=2025-08-10", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 1 {
		t.Errorf("Expected 1 record for the day, got %d", len(rows))
	}
}

func TestAttendanceExport(t *testing.T) {
	router, db := setupAttendanceTest(t)
	token := testutil.AdminToken()

	p := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)
	db.Create(&entity.Attendance{PersonelID: p.ID, Tarih: "2025-08-10", Durum: "Geldi", GirisSaati: "08:00"})

	w := testutil.DoRequest(router, "GET", "/api/v1/devam/rapor?ay=2025-08", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Expected xlsx content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "devam_2025-08.xlsx") {
		t.Errorf("Expected attachment filename in %q", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("Expected non-empty file body")
	}
}

func TestAttendanceExportInvalidMonth(t *testing.T) {
	router, _ := setupAttendanceTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/devam/rapor?ay=agustos", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
