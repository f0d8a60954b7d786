package handler

import (
	"net/http"
	"testing"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/alican7645/FarmFlow/internal/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupHarvestTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, testutil.TestConfig())
	h := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/hasat", h.Harvest.List)
	api.POST("/hasat", h.Harvest.Create)
	api.GET("/hasat/istatistik", h.Harvest.Stats)
	api.GET("/hasat/:id", h.Harvest.Get)
	api.PUT("/hasat/:id", h.Harvest.Update)
	api.DELETE("/hasat/:id", h.Harvest.Delete)

	return router, db
}

func createHarvest(t *testing.T, router *gin.Engine, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := testutil.DoRequest(router, "POST", "/api/v1/hasat", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return testutil.ParseResponse(w)["data"].(map[string]interface{})
}

func TestHarvestListInvalidFilterID(t *testing.T) {
	router, _ := setupHarvestTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/hasat?personel_id=abc", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for malformed personel_id, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/hasat?uretim_id=abc", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for malformed uretim_id, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHarvestCreate(t *testing.T) {
	router, db := setupHarvestTest(t)
	token := testutil.AdminToken()

	p := testutil.SeedProduction(t, db, "Sera 1", "Domates", "2025-03-01", "Büyüme Döneminde")
	worker := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)

	data := createHarvest(t, router, token, map[string]interface{}{
		"uretim_id":     p.ID,
		"hasat_tarihi":  "2025-06-10",
		"parsel_alan":   "Parsel A",
		"hasat_miktari": 120.5,
		"personel_id":   worker.ID,
	})
	if data["hasat_miktari"].(float64) != 120.5 {
		t.Errorf("Expected hasat_miktari 120.5, got %v", data["hasat_miktari"])
	}
}

func TestHarvestUnknownProductionRejected(t *testing.T) {
	router, _ := setupHarvestTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/hasat", map[string]interface{}{
		"uretim_id":     999,
		"hasat_tarihi":  "2025-06-10",
		"parsel_alan":   "Parsel A",
		"hasat_miktari": 10.0,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHarvestNegativeAmountRejected(t *testing.T) {
	router, _ := setupHarvestTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/hasat", map[string]interface{}{
		"hasat_tarihi":  "2025-06-10",
		"parsel_alan":   "Parsel A",
		"hasat_miktari": -5.0,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHarvestListByMonth(t *testing.T) {
	router, db := setupHarvestTest(t)
	token := testutil.AdminToken()

	db.Create(&entity.Harvest{HasatTarihi: "2025-06-10", ParselAlan: "A", HasatMiktari: 100})
	db.Create(&entity.Harvest{HasatTarihi: "2025-06-20", ParselAlan: "B", HasatMiktari: 50})
	db.Create(&entity.Harvest{HasatTarihi: "2025-07-01", ParselAlan: "A", HasatMiktari: 70})

	w := testutil.DoRequest(router, "GET", "/api/v1/hasat?ay=2025-06", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := testutil.ParseResponse(w)["data"].([]interface{})
	if len(rows) != 2 {
		t.Errorf("Expected 2 harvests in June, got %d", len(rows))
	}
}

func TestHarvestStats(t *testing.T) {
	router, db := setupHarvestTest(t)
	token := testutil.AdminToken()

	w1 := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)
	w2 := testutil.SeedPersonnel(t, db, "Ayşe Kaya", 19500)

	db.Create(&entity.Harvest{HasatTarihi: "2025-06-10", ParselAlan: "A", HasatMiktari: 100, PersonelID: &w1.ID})
	db.Create(&entity.Harvest{HasatTarihi: "2025-06-12", ParselAlan: "B", HasatMiktari: 40, PersonelID: &w2.ID})
	db.Create(&entity.Harvest{HasatTarihi: "2025-06-20", ParselAlan: "A", HasatMiktari: 60, PersonelID: &w1.ID})
	db.Create(&entity.Harvest{HasatTarihi: "2025-07-01", ParselAlan: "A", HasatMiktari: 500, PersonelID: &w2.ID})

	w := testutil.DoRequest(router, "GET", "/api/v1/hasat/istatistik?ay=2025-06", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["toplam_miktar"].(float64) != 200 {
		t.Errorf("Expected toplam_miktar 200, got %v", data["toplam_miktar"])
	}
	top := data["en_iyiler"].([]interface{})
	if len(top) != 2 {
		t.Fatalf("Expected 2 harvesters, got %d", len(top))
	}
	first := top[0].(map[string]interface{})
	if first["personel_adi"] != "Ali Demir" {
		t.Errorf("Expected top harvester 'Ali Demir', got %v", first["personel_adi"])
	}
}
