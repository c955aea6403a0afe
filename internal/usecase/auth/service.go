package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/phone"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInternal               = errors.New("internal error")
)

// ValidationError names the offending field so the client can highlight it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type RegisterInput struct {
	FullName       string
	Email          string
	Password       string
	University     string
	PassoutYear    int
	Location       string
	Company        string
	Domain         string
	Phone          string
	ProfilePicture *string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Register validates the candidate, hashes the password, and creates the
// account. The returned user never carries the password hash.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	if err := validateRegisterInput(&in); err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:             uuid.New(),
		FullName:       in.FullName,
		Email:          in.Email,
		PasswordHash:   string(hash),
		University:     in.University,
		PassoutYear:    in.PassoutYear,
		Location:       in.Location,
		Company:        in.Company,
		Domain:         in.Domain,
		Phone:          in.Phone,
		ProfilePicture: in.ProfilePicture,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

// Login resolves the account case-insensitively by email. Unknown email and
// wrong password produce the same error so the response never reveals
// whether the address is registered.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func validateRegisterInput(in *RegisterInput) error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.University = strings.TrimSpace(in.University)
	in.Location = strings.TrimSpace(in.Location)
	in.Company = strings.TrimSpace(in.Company)
	in.Domain = strings.TrimSpace(in.Domain)
	in.Phone = phone.Format(in.Phone)

	required := []struct {
		field string
		value string
	}{
		{"full_name", in.FullName},
		{"email", in.Email},
		{"password", in.Password},
		{"location", in.Location},
		{"company", in.Company},
		{"domain", in.Domain},
		{"phone", in.Phone},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Reason: "required"}
		}
	}

	if !strings.Contains(in.Email, "@") {
		return &ValidationError{Field: "email", Reason: "malformed"}
	}

	if in.University == "" {
		in.University = user.DefaultUniversity
	}

	if in.PassoutYear < user.MinPassoutYear || in.PassoutYear > user.MaxPassoutYear {
		return &ValidationError{
			Field:  "passout_year",
			Reason: fmt.Sprintf("must be between %d and %d", user.MinPassoutYear, user.MaxPassoutYear),
		}
	}

	return nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
