package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alican7645/FarmFlow/internal/config"
	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const JWTSecret = "farmflow-test-secret-key-2025"

// TestEnv holds test environment resources
type TestEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	T      *testing.T
}

// TestConfig returns a config suitable for wiring services in tests
func TestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:             JWTSecret,
			AccessTokenExpire:  2 * time.Hour,
			RefreshTokenExpire: 7 * 24 * time.Hour,
			Issuer:             "farmflow-test",
		},
	}
}

// SetupTestDB creates an isolated in-memory sqlite database.
// Her test kendi veritabanını alır; bağlantı kapanınca veriler yok olur.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Bellek içi sqlite tek bağlantıda tutulur
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.Production{},
		&entity.Harvest{},
		&entity.StockItem{},
		&entity.StockMovement{},
		&entity.Personnel{},
		&entity.Attendance{},
		&entity.Task{},
		&entity.User{},
		&entity.LoginAttempt{},
	); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup creates an API group with JWT auth middleware for testing
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret))
}

// GenerateTestToken creates a valid JWT token for testing
func GenerateTestToken(userID uint, kullaniciAdi, rol string) string {
	now := time.Now()
	claims := &middleware.JWTClaims{
		UserID:       userID,
		KullaniciAdi: kullaniciAdi,
		Rol:          rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			Issuer:    "farmflow-test",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// AdminToken returns a token for a default admin test user
func AdminToken() string {
	return GenerateTestToken(1, "testadmin", entity.RoleAdmin)
}

// UserToken returns a token for a non-admin test user
func UserToken() string {
	return GenerateTestToken(2, "testuser", entity.RoleUser)
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a generic map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedUser creates a test user with a bcrypt hashed password
func SeedUser(t *testing.T, db *gorm.DB, kullaniciAdi, sifre, rol string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(sifre), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &entity.User{
		KullaniciAdi: kullaniciAdi,
		PasswordHash: string(hash),
		AdSoyad:      "Test " + kullaniciAdi,
		Rol:          rol,
		Aktif:        true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed test user: %v", err)
	}
	return user
}

// SeedPersonnel creates a test personnel record
func SeedPersonnel(t *testing.T, db *gorm.DB, ad string, maas float64) *entity.Personnel {
	t.Helper()
	p := &entity.Personnel{
		PersonelAdi:      ad,
		Pozisyon:         "İşçi",
		AylikMaas:        maas,
		IseBaslamaTarihi: "2025-01-01",
		Aktif:            true,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to seed personnel: %v", err)
	}
	return p
}

// SeedProduction creates a test production record
func SeedProduction(t *testing.T, db *gorm.DB, sera, urun, ekimTarihi, durum string) *entity.Production {
	t.Helper()
	p := &entity.Production{
		SeraAdi:       sera,
		UrunAdi:       urun,
		EkimTarihi:    ekimTarihi,
		Durum:         durum,
		BeklenenVerim: 100,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to seed production: %v", err)
	}
	return p
}

// SeedStockItem creates a test stock item
func SeedStockItem(t *testing.T, db *gorm.DB, ad string, miktar, minStok float64) *entity.StockItem {
	t.Helper()
	s := &entity.StockItem{
		MalzemeAdi: ad,
		Kategori:   "Gübre",
		Miktar:     miktar,
		Birim:      "kg",
		MinStok:    minStok,
		Depo:       "Ana Depo",
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("Failed to seed stock item: %v", err)
	}
	return s
}
