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

func setupTaskTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, testutil.TestConfig())
	h := NewHandlers(services)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api/v1")

	api.GET("/gorevler", h.Task.List)
	api.POST("/gorevler", h.Task.Create)
	api.GET("/gorevler/:id", h.Task.Get)
	api.PUT("/gorevler/:id", h.Task.Update)
	api.PUT("/gorevler/:id/tamamla", h.Task.Complete)
	api.DELETE("/gorevler/:id", h.Task.Delete)

	api.GET("/personel/:id/gorevler", h.Personnel.Tasks)

	return router, db
}

func TestTaskCreateAndComplete(t *testing.T) {
	router, db := setupTaskTest(t)
	token := testutil.AdminToken()

	p := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)

	w := testutil.DoRequest(router, "POST", "/api/v1/gorevler", map[string]interface{}{
		"personel_id": p.ID,
		"gorev":       "Sera 1 sulama kontrolü",
		"tarih":       "2025-08-20",
		"sera_adi":    "Sera 1",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["durum"] != entity.TaskStatusOpen {
		t.Errorf("Expected new task durum 'Açık', got %v", data["durum"])
	}

	id := uint(data["id"].(float64))
	w = testutil.DoRequest(router, "PUT", fmt.Sprintf("/api/v1/gorevler/%d/tamamla", id), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["durum"] != entity.TaskStatusDone {
		t.Errorf("Expected durum 'Tamamlandı', got %v", data["durum"])
	}
}

func TestTaskUnknownPersonnelRejected(t *testing.T) {
	router, _ := setupTaskTest(t)
	token := testutil.AdminToken()

	w := testutil.DoRequest(router, "POST", "/api/v1/gorevler", map[string]interface{}{
		"personel_id": 999,
		"gorev":       "Hayalet görev",
		"tarih":       "2025-08-20",
	}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTaskListFilters(t *testing.T) {
	router, db := setupTaskTest(t)
	token := testutil.AdminToken()

	p1 := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)
	p2 := testutil.SeedPersonnel(t, db, "Ayşe Kaya", 19500)

	db.Create(&entity.Task{PersonelID: p1.ID, Gorev: "Sulama", Tarih: "2025-08-01", Durum: "Açık"})
	db.Create(&entity.Task{PersonelID: p1.ID, Gorev: "Budama", Tarih: "2025-08-05", Durum: "Tamamlandı"})
	db.Create(&entity.Task{PersonelID: p2.ID, Gorev: "İlaçlama", Tarih: "2025-07-20", Durum: "Açık"})

	w := testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/gorevler?personel_id=%d", p1.ID), nil, token)
	rows := testutil.ParseResponse(w)["data"].([]interface{})
	if len(rows) != 2 {
		t.Errorf("Expected 2 tasks for p1, got %d", len(rows))
	}

	w = testutil.DoRequest(router, "GET", "/api/v1/gorevler?ay=2025-08&durum=Açık", nil, token)
	rows = testutil.ParseResponse(w)["data"].([]interface{})
	if len(rows) != 1 {
		t.Errorf("Expected 1 open task in August, got %d", len(rows))
	}
}

func TestPersonnelTaskListing(t *testing.T) {
	router, db := setupTaskTest(t)
	token := testutil.AdminToken()

	p := testutil.SeedPersonnel(t, db, "Ali Demir", 18000)
	db.Create(&entity.Task{PersonelID: p.ID, Gorev: "Sulama", Tarih: "2025-08-01", Durum: "Açık"})

	w := testutil.DoRequest(router, "GET", fmt.Sprintf("/api/v1/personel/%d/gorevler", p.ID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := testutil.ParseResponse(w)["data"].([]interface{})
	if len(rows) != 1 {
		t.Errorf("Expected 1 task, got %d", len(rows))
	}

	// Olmayan personel için 404
	w = testutil.DoRequest(router, "GET", "/api/v1/personel/999/gorevler", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
