package services

import (
	"errors"
	"time"

	"hotel-backoffice/models"
	"hotel-backoffice/utils"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues and validates the JWTs that carry the actor identity
// every mutating call receives.
type AuthService struct {
	DB     *gorm.DB
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	AdminID  uint   `json:"admin_id"`
	FullName string `json:"full_name"`
	HotelID  uint   `json:"hotel_id"`
	jwtlib.RegisteredClaims
}

func NewAuthService(db *gorm.DB, secret string) *AuthService {
	return &AuthService{DB: db, secret: []byte(secret), ttl: 24 * time.Hour}
}

func (s *AuthService) Login(username, password string) (string, models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", admin, utils.NewUnauthorized("invalid username or password")
		}
		return "", admin, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", admin, utils.NewUnauthorized("invalid username or password")
	}

	token, err := s.GenerateToken(admin)
	return token, admin, err
}

func (s *AuthService) GenerateToken(admin models.Admin) (string, error) {
	claims := Claims{
		AdminID:  admin.ID,
		FullName: admin.FullName,
		HotelID:  admin.HotelID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, utils.NewUnauthorized("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, utils.NewUnauthorized("invalid claims")
	}
	return claims, nil
}
