package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurbekov/user-service/pkg/security/password"
)

// UpdateParams carries the optional fields of an account update.
// A nil field is left unchanged; a non-nil empty string is rejected
// as validation failure rather than clearing the field.
type UpdateParams struct {
	Name     *string
	Email    *string
	Password *string
}

// UseCase describes the account operations.
type UseCase interface {
	Login(ctx context.Context, email, pass string) (string, error)
	Register(ctx context.Context, name, email, pass string) (User, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	tokens TokenGenerator
}

// NewService returns default implementation of UseCase.
func NewService(repo Repository, tokens TokenGenerator) UseCase {
	return &service{repo: repo, tokens: tokens}
}

// Login verifies the credentials and issues a bearer token. An unknown
// email and a wrong password are distinct failures (404 vs 401 at the
// boundary), matching the documented API contract.
func (s *service) Login(ctx context.Context, email, pass string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || pass == "" {
		return "", ErrValidation("email and password are required")
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := password.Compare(pass, u.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return "", ErrInvalidCredentials
		}
		// Corrupt stored digest: a local data error, not bad credentials.
		return "", err
	}
	return s.tokens.Generate(ctx, u)
}

func (s *service) Register(ctx context.Context, name, email, pass string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || pass == "" {
		return User{}, ErrValidation("name, email and password are required")
	}
	if !strings.Contains(email, "@") {
		return User{}, ErrValidation("invalid email")
	}

	// Best-effort existence check; the store's unique constraint is the
	// authoritative guard against concurrent registrations.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return User{}, err
	}
	now := time.Now().UTC()
	u := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies only the supplied fields. Changing the email to one held
// by a different account fails with ErrEmailTaken; a password change is
// rehashed with a fresh salt.
func (s *service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return ErrValidation("name must not be empty")
		}
		u.Name = name
	}
	if params.Email != nil {
		email := normalizeEmail(*params.Email)
		if email == "" || !strings.Contains(email, "@") {
			return ErrValidation("invalid email")
		}
		if email != u.Email {
			if other, err := s.repo.GetByEmail(ctx, email); err == nil && other.ID != u.ID {
				return ErrEmailTaken
			}
			u.Email = email
		}
	}
	if params.Password != nil {
		if *params.Password == "" {
			return ErrValidation("password must not be empty")
		}
		hash, err := password.Hash(*params.Password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}

	u.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, u)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
