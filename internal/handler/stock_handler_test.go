package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/alican7645/FarmFlow/internal/service"
	"github.com/alican7645/FarmFlow/internal/testutil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupStockTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, testutil.TestConfig())
	h := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/stok", h.Stock.List)
	api.POST("/stok", h.Stock.Create)
	api.GET("/stok/kritik", h.Stock.LowStock)
	api.GET("/stok/:id", h.Stock.Get)
	api.PUT("/stok/:id", h.Stock.Update)
	api.DELETE("/stok/:id", h.Stock.Delete)
	api.POST("/stok/:id/hareket", h.Stock.Move)
	api.GET("/stok/:id/hareketler", h.Stock.Movements)

	return router, db
}

func TestStockLowStockBoundary(t *testing.T) {
	router, db := setupStockTest(t)
	token := testutil.AdminToken()

	testutil.SeedStockItem(t, db, "Azot Gübresi", 5, 10)   // kritik
	testutil.SeedStockItem(t, db, "Fosfor Gübresi", 15, 10) // yeterli
	testutil.SeedStockItem(t, db, "Potasyum", 10, 10)       // eşikte, kritik değil

	w := testutil.DoRequest(router, "GET", "/api/v1/stok/kritik", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 critical item, got %d", len(rows))
	}
	item := rows[0].(map[string]interface{})
	if item["malzeme_adi"] != "Azot Gübresi" {
		t.Errorf("Expected 'Azot Gübresi', got %v", item["malzeme_adi"])
	}
}

func TestStockCreateMergesExisting(t *testing.T) {
	router, db := setupStockTest(t)
	token := testutil.AdminToken()

	testutil.SeedStockItem(t, db, "Tohum", 20, 5)

	w := testutil.DoRequest(router, "POST", "/api/v1/stok", map[string]interface{}{
		"malzeme_adi": "Tohum",
		"kategori":    "Gübre",
		"miktar":      30.0,
		"birim":       "kg",
		"depo":        "Ana Depo",
		"min_stok":    5.0,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["miktar"].(float64) != 50 {
		t.Errorf("Expected merged miktar 50, got %v", data["miktar"])
	}

	var count int64
	db.Model(&entity.StockItem{}).Where("malzeme_adi = ?", "Tohum").Count(&count)
	if count != 1 {
		t.Errorf("Expected single row after merge, got %d", count)
	}
}

func TestStockMovementIn(t *testing.T) {
	router, db := setupStockTest(t)
	token := testutil.AdminToken()

	item := testutil.SeedStockItem(t, db, "İlaç", 10, 2)

	w := testutil.DoRequest(router, "POST", fmt.Sprintf("/api/v1/stok/%d/hareket", item.ID), map[string]interface{}{
		"yon":    "giris",
		"miktar": 4.0,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["miktar"].(float64) != 14 {
		t.Errorf("Expected miktar 14, got %v", data["miktar"])
	}

	var movements int64
	db.Model(&entity.StockMovement{}).Where("stok_id = ?", item.ID).Count(&movements)
	if movements != 1 {
		t.Errorf("Expected 1 movement row, got %d", movements)
	}
}

func TestStockMovementOutInsufficient(t *testing.T) {
	router, db := setupStockTest(t)
	token := testutil.AdminToken()

	item := testutil.SeedStockItem(t, db, "İlaç", 3, 2)

	w := testutil.DoRequest(router, "POST", fmt.Sprintf("/api/v1/stok/%d/hareket", item.ID), map[string]interface{}{
		"yon":    "cikis",
		"miktar": 5.0,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// Bakiye ve hareket tablosu dokunulmamış olmalı
	var st entity.StockItem
	db.First(&st, item.ID)
	if st.Miktar != 3 {
		t.Errorf("Expected miktar unchanged at 3, got %v", st.Miktar)
	}
	var movements int64
	db.Model(&entity.StockMovement{}).Where("stok_id = ?", item.ID).Count(&movements)
	if movements != 0 {
		t.Errorf("Expected no movement rows, got %d", movements)
	}
}

func TestStockMovementInvalidDirection(t *testing.T) {
	router, db := setupStockTest(t)
	token := testutil.AdminToken()

	item := testutil.SeedStockItem(t, db, "İlaç", 3, 2)

	w := testutil.DoRequest(router, "POST", fmt.Sprintf("/api/v1/stok/%d/hareket", item.ID), map[string]interface{}{
		"yon":    "transfer",
		"miktar": 1.0,
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStockMovementsUnknownItem(t *testing.T) {
	router, _ := setupStockTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "GET", "/api/v1/stok/999/hareketler", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
