package admin

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"lawncare/internal/domain"
	jwtsvc "lawncare/internal/pkg/jwt"
	"lawncare/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Exporter pushes the current tables to the configured spreadsheet.
type Exporter interface {
	ExportAll(ctx context.Context) error
}

type Service struct {
	store        repository.Store
	jwt          *jwtsvc.Service
	exporter     Exporter
	passwordHash string
}

func NewService(store repository.Store, jwt *jwtsvc.Service, exporter Exporter, passwordHash string) *Service {
	return &Service{
		store:        store,
		jwt:          jwt,
		exporter:     exporter,
		passwordHash: passwordHash,
	}
}

// Login checks the admin password against the configured bcrypt hash and
// issues a token. With no hash configured the admin surface is locked out
// entirely.
func (s *Service) Login(password string) (string, error) {
	if s.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken("admin")
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.store.ListBookings(ctx)
}

func (s *Service) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return s.store.ListContacts(ctx)
}

func (s *Service) Export(ctx context.Context) error {
	return s.exporter.ExportAll(ctx)
}
