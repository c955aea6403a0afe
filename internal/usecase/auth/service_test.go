package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"alumni-connect/internal/domain/user"

	"github.com/google/uuid"
)

type memUserRepo struct {
	byID map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uuid.UUID]user.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u user.User) error {
	for _, existing := range m.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailTaken
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUserRepo) Update(_ context.Context, id uuid.UUID, p user.Patch) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Domain != nil {
		u.Domain = *p.Domain
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = p.ProfilePicture
	}
	m.byID[id] = u
	return u, nil
}

func (m *memUserRepo) List(_ context.Context, limit int) ([]user.User, error) {
	out := make([]user.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

func adaInput() RegisterInput {
	return RegisterInput{
		FullName:    "Ada Lovelace",
		Email:       "ada@ex.com",
		Password:    "p1",
		PassoutYear: 2010,
		Location:    "NYC",
		Company:     "Acme",
		Domain:      "Tech",
		Phone:       "4155551234",
	}
}

func TestRegister_Success(t *testing.T) {
	svc := NewService(newMemUserRepo())

	u, err := svc.Register(context.Background(), adaInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Phone != "(415) 555-1234" {
		t.Errorf("phone = %q, want canonical format", u.Phone)
	}
	if u.University != user.DefaultUniversity {
		t.Errorf("university = %q, want default", u.University)
	}
	if u.PasswordHash != "" {
		t.Errorf("password hash leaked across the boundary")
	}
	if u.ID == uuid.Nil {
		t.Errorf("id not assigned")
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), adaInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	dup := adaInput()
	dup.Email = "ADA@ex.com"
	_, err := svc.Register(context.Background(), dup)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("store mutated by failed register: %d users", n)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newMemUserRepo())

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
		field  string
	}{
		{"missing full name", func(in *RegisterInput) { in.FullName = " " }, "full_name"},
		{"missing email", func(in *RegisterInput) { in.Email = "" }, "email"},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, "password"},
		{"missing location", func(in *RegisterInput) { in.Location = "" }, "location"},
		{"missing company", func(in *RegisterInput) { in.Company = "" }, "company"},
		{"missing domain", func(in *RegisterInput) { in.Domain = "" }, "domain"},
		{"missing phone", func(in *RegisterInput) { in.Phone = "" }, "phone"},
		{"malformed email", func(in *RegisterInput) { in.Email = "not-an-email" }, "email"},
		{"year too old", func(in *RegisterInput) { in.PassoutYear = 1989 }, "passout_year"},
		{"year in future", func(in *RegisterInput) { in.PassoutYear = 2026 }, "passout_year"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := adaInput()
			c.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Field != c.field {
				t.Errorf("field = %q, want %q", valErr.Field, c.field)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc := NewService(newMemUserRepo())
	if _, err := svc.Register(context.Background(), adaInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ada@ex.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	// unknown email must produce the same error shape as a bad password
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@ex.com", Password: "p1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "ada@ex.com", Password: "p1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.PasswordHash != "" {
		t.Errorf("password hash present in login result")
	}
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc := NewService(newMemUserRepo())
	if _, err := svc.Register(context.Background(), adaInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "ADA@EX.COM", Password: "p1"}); err != nil {
		t.Fatalf("case-insensitive login failed: %v", err)
	}
}
