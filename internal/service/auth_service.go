package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alican7645/FarmFlow/internal/config"
	"github.com/alican7645/FarmFlow/internal/entity"
	"github.com/alican7645/FarmFlow/internal/middleware"
	"github.com/alican7645/FarmFlow/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials Hangi alanın yanlış olduğunu açık etmeyen genel giriş hatası
var ErrInvalidCredentials = errors.New("kullanıcı adı veya şifre hatalı")

// ErrSetupDone İlk kurulum zaten yapılmış
var ErrSetupDone = errors.New("kurulum zaten tamamlanmış")

// AuthService Kimlik doğrulama servisi
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client // nil olabilir; refresh token o durumda sadece imza ile doğrulanır
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb, cfg: cfg}
}

// TokenPair Erişim + yenileme token çifti
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// SetupInput İlk yönetici kurulumu
type SetupInput struct {
	KullaniciAdi string `json:"kullanici_adi" binding:"required,min=3"`
	Sifre        string `json:"sifre" binding:"required,min=8"`
	AdSoyad      string `json:"ad_soyad"`
	Email        string `json:"email"`
}

// Setup İlk yöneticiyi oluşturur. Varsayılan kimlik yerine kurulum
// adımı zorunludur; users tablosu boş değilse reddedilir.
func (s *AuthService) Setup(ctx context.Context, input *SetupInput) (*entity.User, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSetupDone
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Sifre), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("şifre özetlenemedi: %w", err)
	}
	user := &entity.User{
		KullaniciAdi: input.KullaniciAdi,
		Email:        input.Email,
		PasswordHash: string(hash),
		AdSoyad:      input.AdSoyad,
		Rol:          entity.RoleAdmin,
		Aktif:        true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("yönetici oluşturulamadı: %w", err)
	}
	return user, nil
}

// LoginInput Giriş isteği
type LoginInput struct {
	KullaniciAdi string `json:"kullanici_adi" binding:"required"`
	Sifre        string `json:"sifre" binding:"required"`
}

// Login Kimlik bilgilerini doğrular ve token çifti üretir.
// Her çağrı, sonuç ne olursa olsun login_attempts tablosuna tek satır yazar.
func (s *AuthService) Login(ctx context.Context, input *LoginInput, ip string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.KullaniciAdi)

	basarili := false
	if err == nil && user.Aktif &&
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Sifre)) == nil {
		basarili = true
	}

	if logErr := s.userRepo.LogAttempt(ctx, &entity.LoginAttempt{
		KullaniciAdi: input.KullaniciAdi,
		IPAdresi:     ip,
		Basarili:     basarili,
	}); logErr != nil {
		return nil, nil, fmt.Errorf("giriş denemesi kaydedilemedi: %w", logErr)
	}

	if !basarili {
		return nil, nil, ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, nil, fmt.Errorf("son giriş güncellenemedi: %w", err)
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("token üretilemedi: %w", err)
	}
	return user, pair, nil
}

// generateTokenPair Erişim ve yenileme token'larını imzalar
func (s *AuthService) generateTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := &middleware.JWTClaims{
		UserID:       user.ID,
		KullaniciAdi: user.KullaniciAdi,
		Rol:          user.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenExpire)),
			ID:        uuid.New().String(),
		},
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshJti := uuid.New().String()
	refreshClaims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"uid":  user.ID,
		"type": "refresh",
		"iss":  s.cfg.JWT.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWT.RefreshTokenExpire).Unix(),
		"jti":  refreshJti,
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	// Yenileme token'ını Redis'e yaz; Redis yoksa imza doğrulaması yeterli sayılır
	if s.rdb != nil {
		s.rdb.Set(ctx, "token:refresh:"+refreshJti, user.ID, s.cfg.JWT.RefreshTokenExpire)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenExpire.Seconds()),
	}, nil
}

// Refresh Yenileme token'ı ile yeni token çifti üretir
func (s *AuthService) Refresh(ctx context.Context, refreshTokenString string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("geçersiz yenileme token'ı: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("geçersiz token içeriği")
	}
	if claims["type"] != "refresh" {
		return nil, fmt.Errorf("geçersiz token türü")
	}

	jti, _ := claims["jti"].(string)
	if s.rdb != nil {
		if _, err := s.rdb.Get(ctx, "token:refresh:"+jti).Result(); err != nil {
			return nil, fmt.Errorf("yenileme token'ı geçersiz kılınmış veya süresi dolmuş")
		}
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, fmt.Errorf("geçersiz token içeriği")
	}
	user, err := s.userRepo.FindByID(ctx, uint(uidFloat))
	if err != nil {
		return nil, fmt.Errorf("kullanıcı bulunamadı")
	}
	if !user.Aktif {
		return nil, fmt.Errorf("hesap devre dışı")
	}

	// Tek kullanımlık: eski yenileme token'ı silinir
	if s.rdb != nil {
		s.rdb.Del(ctx, "token:refresh:"+jti)
	}

	return s.generateTokenPair(ctx, user)
}

// Logout Kullanıcının bekleyen yenileme token'larını geçersiz kılar
func (s *AuthService) Logout(ctx context.Context, refreshTokenString string) error {
	if s.rdb == nil || refreshTokenString == "" {
		return nil
	}
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil // zaten geçersiz
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if jti, ok := claims["jti"].(string); ok {
			s.rdb.Del(ctx, "token:refresh:"+jti)
		}
	}
	return nil
}

// CurrentUser Oturumdaki kullanıcıyı döner
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
