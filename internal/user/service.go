// File: internal/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cadastro_backend/internal/common"
	"cadastro_backend/internal/config"
	"cadastro_backend/internal/platform/crypto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmailInUse is returned when another account already claims the email.
	// The legacy contract surfaces conflicts as 400, not 409.
	ErrEmailInUse = common.NewAPIError(http.StatusBadRequest, "Esse email de usuário já existe.")
	// ErrPasswordMismatch is returned when the supplied old password does not
	// match the stored derived secret.
	ErrPasswordMismatch = common.NewAPIError(http.StatusUnauthorized, "Senha não corresponde")
	// ErrUserNotFound is returned when the account does not exist.
	ErrUserNotFound = common.NewAPIError(http.StatusUnauthorized, "Usuário não encontrado")
)

// Service defines the business operations on accounts.
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*User, error)
	Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// ServiceImplementation implements Service on top of the GORM repository.
type ServiceImplementation struct {
	repo   Repository
	cfg    *config.Config
	logger *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new user service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{repo: repo, cfg: cfg, logger: logger}
}

// Create validates uniqueness and persists a new account. The plaintext
// password is derived into a bcrypt hash before anything touches storage.
func (s *ServiceImplementation) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailInUse
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}

	hash, err := crypto.HashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		s.logger.Error("Failed to hash password during account creation", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Name:         req.Name,
		Email:        NormalizeEmail(req.Email),
		PasswordHash: hash,
		TaxID:        req.TaxID,
		BirthDate:    req.BirthDate,
		Position:     req.Position,
	}

	// The unique index remains the authoritative conflict signal if another
	// request slipped between the pre-check and this insert.
	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Warn("Failed to create user", zap.String("email", u.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("User created", zap.String("userID", u.ID.String()))
	return u, nil
}

// Update applies a partial update to the account identified by the
// authenticated identity. A single linear sequence with early-exit failures:
// load, email conflict check, old-password check, apply, reload with avatar.
func (s *ServiceImplementation) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		newEmail := NormalizeEmail(*req.Email)
		if newEmail != u.Email {
			_, lookupErr := s.repo.FindByEmail(ctx, newEmail)
			if lookupErr == nil {
				return nil, ErrEmailInUse
			}
			if !errors.Is(lookupErr, common.ErrNotFound) {
				return nil, fmt.Errorf("failed to check email availability: %w", lookupErr)
			}
		}
		u.Email = newEmail
	}

	if req.OldPassword != nil && !crypto.CheckPassword(u.PasswordHash, *req.OldPassword) {
		s.logger.Warn("Old password mismatch on update", zap.String("userID", userID.String()))
		return nil, ErrPasswordMismatch
	}

	applyUpdate(u, &req)

	if req.Password != nil {
		hash, hashErr := crypto.HashPassword(*req.Password, s.cfg.BcryptCost)
		if hashErr != nil {
			s.logger.Error("Failed to hash new password", zap.Error(hashErr))
			return nil, fmt.Errorf("failed to hash password: %w", hashErr)
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Warn("Failed to update user", zap.String("userID", userID.String()), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.FindByIDWithAvatar(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User updated", zap.String("userID", userID.String()))
	return updated, nil
}

// Authenticate verifies email+password credentials and returns the account.
func (s *ServiceImplementation) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !crypto.CheckPassword(u.PasswordHash, password) {
		s.logger.Info("Invalid password attempt", zap.String("userID", u.ID.String()))
		return nil, ErrPasswordMismatch
	}
	return u, nil
}

// GetByID loads an account by identifier.
func (s *ServiceImplementation) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// applyUpdate copies every present request field onto the stored record.
// Absent fields are left unchanged; the credential triple is handled by the
// caller.
func applyUpdate(u *User, req *UpdateUserRequest) {
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.TaxID != nil {
		u.TaxID = req.TaxID
	}
	if req.BirthDate != nil {
		u.BirthDate = req.BirthDate
	}
	if req.Position != nil {
		u.Position = req.Position
	}
	if req.Address != nil {
		u.Address = req.Address
	}
	if req.ZipCode != nil {
		u.ZipCode = req.ZipCode
	}
	if req.Street != nil {
		u.Street = req.Street
	}
	if req.Complement != nil {
		u.Complement = req.Complement
	}
	if req.Number != nil {
		u.Number = req.Number
	}
	if req.District != nil {
		u.District = req.District
	}
	if req.City != nil {
		u.City = req.City
	}
	if req.State != nil {
		u.State = req.State
	}
	if req.AvatarID != nil {
		u.AvatarID = req.AvatarID
	}
}
