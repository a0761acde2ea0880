package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"mangan/internal/models"
	"mangan/internal/redis"
	"mangan/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type CallerKind string

const (
	CallerCustomer CallerKind = "customer"
	CallerStaff    CallerKind = "staff"
)

// Identity is the already-authenticated caller every core operation receives
// explicitly. Nothing below the handlers reads ambient session state.
type Identity struct {
	ID   uint
	Kind CallerKind
	Role models.StaffRole
}

type authClaims struct {
	Kind string `json:"kind"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type RegisterCustomerInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10,max=15"`
	Address  string `json:"address" binding:"required,min=10,max=255"`
	Password string `json:"password" binding:"required,min=6"`
}

// SessionStore is the revocable session record behind each issued token.
// *redis.Client satisfies it in production.
type SessionStore interface {
	SetSession(ctx context.Context, sessionID string, data *redis.SessionData, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type AuthService interface {
	RegisterCustomer(input RegisterCustomerInput) (*models.Customer, error)
	LoginCustomer(ctx context.Context, email, password string) (string, *models.Customer, error)
	LoginStaff(ctx context.Context, email, password string) (string, *models.StaffUser, error)
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a bearer token to a caller identity, requiring
	// both a valid signature and a live session record in redis.
	Authenticate(ctx context.Context, token string) (*Identity, error)
}

type authService struct {
	customerRepo repository.CustomerRepository
	staffRepo    repository.StaffUserRepository
	sessions     SessionStore
	jwtSecret    []byte
	sessionTTL   time.Duration
}

func NewAuthService(
	customerRepo repository.CustomerRepository,
	staffRepo repository.StaffUserRepository,
	sessions SessionStore,
	jwtSecret string,
	sessionTTL time.Duration,
) AuthService {
	return &authService{
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
		sessions:     sessions,
		jwtSecret:    []byte(jwtSecret),
		sessionTTL:   sessionTTL,
	}
}

func (s *authService) RegisterCustomer(input RegisterCustomerInput) (*models.Customer, error) {
	_, err := s.customerRepo.GetByEmail(input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address1:     input.Address,
		PasswordHash: string(hash),
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	logger.Info().Uint("customer_id", customer.ID).Msg("customer registered")
	return customer, nil
}

func (s *authService) LoginCustomer(ctx context.Context, email, password string) (string, *models.Customer, error) {
	customer, err := s.customerRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, customer.ID, CallerCustomer, "", customer.Email)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

func (s *authService) LoginStaff(ctx context.Context, email, password string) (string, *models.StaffUser, error) {
	staff, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, staff.ID, CallerStaff, string(staff.Role), staff.Email)
	if err != nil {
		return "", nil, err
	}
	return token, staff, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return ErrInvalidCredentials
	}
	return s.sessions.DeleteSession(ctx, claims.ID)
}

func (s *authService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	identity := &Identity{ID: session.UserID, Kind: CallerKind(session.Kind)}
	if session.Kind == string(CallerStaff) {
		identity.Role = models.StaffRole(session.Role)
	}
	return identity, nil
}

func (s *authService) issueToken(ctx context.Context, userID uint, kind CallerKind, role, email string) (string, error) {
	jti, err := randomTokenID()
	if err != nil {
		return "", err
	}

	now := nowFunc()
	claims := authClaims{
		Kind: string(kind),
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	session := &redis.SessionData{
		UserID:    userID,
		Kind:      string(kind),
		Role:      role,
		Email:     email,
		CreatedAt: now,
	}
	if err := s.sessions.SetSession(ctx, jti, session, s.sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

func (s *authService) parseToken(token string) (*authClaims, error) {
	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

func randomTokenID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
