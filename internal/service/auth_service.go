package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/repairshop-service/internal/auth"
	"github.com/spec-kit/repairshop-service/internal/config"
	"github.com/spec-kit/repairshop-service/internal/domain"
	"github.com/spec-kit/repairshop-service/internal/repository"
	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

// AuthService coordinates staff login and password changes.
type AuthService struct {
	staff      repository.StaffRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, staffRepo repository.StaffRepository) *AuthService {
	return &AuthService{
		staff:      staffRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates a staff member and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.StaffMember, string, time.Time, error) {
	staff, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.NewPersistenceError(err)
	}
	if !staff.Active {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("account disabled")
	}
	if err := auth.ComparePassword(staff.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(staff)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return staff, token, exp, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, staff *domain.StaffMember, currentPassword, newPassword string) error {
	if staff == nil {
		return apperrors.NewUnauthenticated("sign in required")
	}
	if err := auth.ComparePassword(staff.PasswordHash, currentPassword); err != nil {
		return apperrors.NewUnauthenticated("invalid credentials")
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	staff.PasswordHash = hash
	if err := s.staff.Update(ctx, staff); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// ListTechs returns active technicians for the assignment dropdown.
func (s *AuthService) ListTechs(ctx context.Context) ([]domain.StaffMember, error) {
	techs, err := s.staff.ListActiveTechs(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if techs == nil {
		techs = []domain.StaffMember{}
	}
	return techs, nil
}
