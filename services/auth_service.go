package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mcqbank/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

type AuthService struct {
	db        *gorm.DB
	redis     *redis.Client
	jwtSecret string
}

func NewAuthService(db *gorm.DB, redisClient *redis.Client, jwtSecret string) *AuthService {
	return &AuthService{db: db, redis: redisClient, jwtSecret: jwtSecret}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, newValidationError("email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StorageError{Op: "register", Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, &StorageError{Op: "register", Err: err}
	}

	return &user, nil
}

func (s *AuthService) Login(req *LoginRequest) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

func (s *AuthService) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken validates the signature and expiry and returns the claims.
func (s *AuthService) ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, wrapStorageErr("get profile", "user", userID, err)
	}
	return &user, nil
}

func invalidationKey(userID uint) string {
	return "auth:invalidated:" + strconv.FormatUint(uint64(userID), 10)
}

// Logout stamps the user in redis; tokens issued before the stamp are
// rejected by the middleware. The stamp expires with the longest-lived token
// it could apply to.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	if err := s.redis.Set(ctx, invalidationKey(userID), now, tokenLifetime).Err(); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return nil
}

// TokenInvalidated reports whether a token issued at issuedAt has been
// revoked by a later logout. Redis errors fail open.
func (s *AuthService) TokenInvalidated(ctx context.Context, userID uint, issuedAt time.Time) bool {
	if s.redis == nil {
		return false
	}
	val, err := s.redis.Get(ctx, invalidationKey(userID)).Result()
	if err != nil {
		return false
	}
	stamp, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false
	}
	return issuedAt.Unix() < stamp
}
