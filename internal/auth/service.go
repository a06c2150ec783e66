package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumenkraft/hr-management/internal"
)

// Repository loads and updates the credential columns on the employee row.
type Repository interface {
	GetCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
	GetCredentialsByID(ctx context.Context, employeeID string) (*Credentials, error)
	SetPermanentPassword(ctx context.Context, employeeID, passwordHash string) error
}

type Service struct {
	repo       Repository
	tokens     TokenGenerator
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, tokens TokenGenerator, bcryptCost int, log *slog.Logger) *Service {
	if bcryptCost <= 0 {
		bcryptCost = internal.DefaultBCryptCost
	}
	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

// Authenticate checks the supplied password against the employee's active
// credential. An employee who has not replaced their temporary password yet
// authenticates against the temporary hash and is flagged to change it.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (*AuthTokens, error) {
	creds, err := s.repo.GetCredentialsByEmail(ctx, dto.Email)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, internal.ErrInvalidCredentials
		}
		s.logger.Error("failed to load credentials", "error", err)
		return nil, err
	}

	hash, ok := creds.ActiveHash()
	if !ok {
		return nil, internal.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(dto.Password)) != nil {
		return nil, internal.ErrInvalidCredentials
	}

	return s.issueTokens(creds)
}

// RefreshTokens exchanges a valid refresh token for a fresh token pair.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	creds, err := s.repo.GetCredentialsByID(ctx, claims.EmployeeID)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, internal.ErrInvalidToken
		}
		return nil, err
	}

	return s.issueTokens(creds)
}

// ChangePassword verifies the current password, stores the new permanent
// hash and retires the temporary credential.
func (s *Service) ChangePassword(ctx context.Context, employeeID string, dto ChangePasswordDTO) error {
	creds, err := s.repo.GetCredentialsByID(ctx, employeeID)
	if err != nil {
		return err
	}

	hash, ok := creds.ActiveHash()
	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(dto.CurrentPassword)) != nil {
		return internal.ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash new password", "error", err)
		return internal.ErrCredentialPrepare.WithCause(err)
	}

	if err := s.repo.SetPermanentPassword(ctx, employeeID, string(newHash)); err != nil {
		s.logger.Error("failed to store new password", "employee_id", employeeID, "error", err)
		return err
	}

	s.logger.Info("password changed", "employee_id", employeeID)
	return nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

func (s *Service) issueTokens(creds *Credentials) (*AuthTokens, error) {
	access, err := s.tokens.GenerateAccessToken(creds.EmployeeID, creds.Email)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err)
		return nil, err
	}

	refresh, err := s.tokens.GenerateRefreshToken(creds.EmployeeID, creds.Email)
	if err != nil {
		s.logger.Error("failed to generate refresh token", "error", err)
		return nil, err
	}

	return &AuthTokens{
		AccessToken:        access,
		RefreshToken:       refresh,
		MustChangePassword: creds.TempPasswordHash != nil && !creds.ChangedTempPassword,
	}, nil
}
