package services

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"foodhub-api/models"
)

const bcryptCost = 10

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService is the demo login/signup backend. Accounts are held in memory
// only; restarting the process forgets them, which is the intended behavior
// for this storefront.
type AuthService struct {
	mu        sync.Mutex
	users     map[string]models.User
	jwtSecret []byte
}

func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		users:     make(map[string]models.User),
		jwtSecret: []byte(jwtSecret),
	}
}

// SeedAdmin registers the admin account read from configuration. Skipped when
// either value is blank.
func (s *AuthService) SeedAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	return s.register(models.SignupData{Fullname: "Admin", Email: email, Password: password}, "admin")
}

// Signup registers a regular account.
func (s *AuthService) Signup(data models.SignupData) error {
	return s.register(data, "user")
}

func (s *AuthService) register(data models.SignupData, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcryptCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[data.Email]; exists {
		return ErrUserExists
	}
	s.users[data.Email] = models.User{
		Fullname: data.Fullname,
		Email:    data.Email,
		Password: string(hash),
		Role:     role,
	}
	return nil
}

// Login checks credentials and returns a signed JWT carrying the user role.
func (s *AuthService) Login(data models.LoginData) (string, error) {
	s.mu.Lock()
	user, exists := s.users[data.Email]
	s.mu.Unlock()

	if !exists {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":    user.Email,
		"fullname": user.Fullname,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

// ParseToken validates a JWT produced by Login and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
