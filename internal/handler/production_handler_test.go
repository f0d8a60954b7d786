package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/alican7645/FarmFlow/internal/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupProductionTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, testutil.TestConfig())
	h := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/uretim", h.Production.List)
	api.POST("/uretim", h.Production.Create)
	api.GET("/uretim/:id", h.Production.Get)
	api.PUT("/uretim/:id", h.Production.Update)
	api.PUT("/uretim/:id/durum", h.Production.UpdateStatus)
	api.DELETE("/uretim/:id", h.Production.Delete)

	return router, db
}

func TestProductionCreate(t *testing.T) {
	router, _ := setupProductionTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/uretim", map[string]interface{}{
		"sera_adi":       "Sera 1",
		"urun_adi":       "Domates",
		"ekim_tarihi":    "2025-03-01",
		"alan":           250.0,
		"beklenen_verim": 1200.0,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["sera_adi"] != "Sera 1" {
		t.Errorf("Expected sera_adi 'Sera 1', got %v", data["sera_adi"])
	}
	if data["durum"] != "Ekim Yapıldı" {
		t.Errorf("Expected default durum 'Ekim Yapıldı', got %v", data["durum"])
	}
}

func TestProductionHarvestBeforePlantingRejected(t *testing.T) {
	router, _ := setupProductionTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/uretim", map[string]interface{}{
		"sera_adi":     "Sera 1",
		"urun_adi":     "Biber",
		"ekim_tarihi":  "2025-06-15",
		"hasat_tarihi": "2025-06-14",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductionStatusUpdate(t *testing.T) {
	router, db := setupProductionTest(t)
	token := testutil.AdminToken()

	p := testutil.SeedProduction(t, db, "Sera 2", "Salatalık", "2025-02-01", "Büyüme Döneminde")

	verim := 950.5
	w := testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/v1/uretim/%d/durum", p.ID), map[string]interface{}{
		"durum":        "Hasat Edildi",
		"gercek_verim": verim,
		"hasat_tarihi": "2025-05-20",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["durum"] != "Hasat Edildi" {
		t.Errorf("Expected durum 'Hasat Edildi', got %v", data["durum"])
	}
	if data["gercek_verim"].(float64) != verim {
		t.Errorf("Expected gercek_verim %v, got %v", verim, data["gercek_verim"])
	}
}

func TestProductionStatusUpdateInvalidStatus(t *testing.T) {
	router, db := setupProductionTest(t)
	token := testutil.AdminToken()

	testutil.SeedProduction(t, db, "Sera 2", "Salatalık", "2025-02-01", "Ekim Yapıldı")

	w := testutil.DoRequest(router, "PUT", "/api/v1/uretim/1/durum", map[string]interface{}{
		"durum": "Bilinmeyen Durum",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductionListFilter(t *testing.T) {
	router, db := setupProductionTest(t)
	token := testutil.AdminToken()

	testutil.SeedProduction(t, db, "Sera 1", "Domates", "2025-01-10", "Hasat Edildi")
	testutil.SeedProduction(t, db, "Sera 2", "Biber", "2025-03-05", "Büyüme Döneminde")
	testutil.SeedProduction(t, db, "Sera 3", "Patlıcan", "2025-04-01", "Ekim Yapıldı")

	// Sadece aktif üretimler
	w := testutil.DoRequest(router, "GET", "/api/v1/uretim?aktif=true", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 2 {
		t.Errorf("Expected 2 active productions, got %d", len(rows))
	}

	// Durum filtresi
	w = testutil.DoRequest(router, "GET", "/api/v1/uretim?durum=Hasat+Edildi", nil, token)
	resp = testutil.ParseResponse(w)
	rows = resp["data"].([]interface{})
	if len(rows) != 1 {
		t.Errorf("Expected 1 harvested production, got %d", len(rows))
	}
}

func TestProductionGetNotFound(t *testing.T) {
	router, _ := setupProductionTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/uretim/999", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductionRequiresAuth(t *testing.T) {
	router, _ := setupProductionTest(t)

	w := testutil.DoRequest(router, "GET", "/api/v1/uretim", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d: %s", w.Code, w.Body.String())
	}
}
