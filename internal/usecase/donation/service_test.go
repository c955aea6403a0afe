package donation

import (
	"context"
	"errors"
	"testing"

	"alumni-connect/internal/domain/donation"
	"alumni-connect/internal/domain/user"

	"github.com/google/uuid"
)

type memDonationRepo struct {
	stored []donation.Donation
}

func (m *memDonationRepo) Create(_ context.Context, d donation.Donation) error {
	m.stored = append(m.stored, d)
	return nil
}

func (m *memDonationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]donation.Donation, error) {
	out := make([]donation.Donation, 0)
	for _, d := range m.stored {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDonationRepo) Count(context.Context) (int64, error) {
	return int64(len(m.stored)), nil
}

type stubUserRepo struct {
	known map[uuid.UUID]bool
}

func (s stubUserRepo) Create(context.Context, user.User) error { return nil }
func (s stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if !s.known[id] {
		return user.User{}, user.ErrNotFound
	}
	return user.User{ID: id}, nil
}
func (s stubUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (s stubUserRepo) Update(context.Context, uuid.UUID, user.Patch) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (s stubUserRepo) List(context.Context, int) ([]user.User, error) { return nil, nil }
func (s stubUserRepo) Count(context.Context) (int64, error)           { return 0, nil }

func validInput(userID uuid.UUID) CreateInput {
	return CreateInput{
		UserID:  userID,
		Name:    "Ada Lovelace",
		Email:   "ada@ex.com",
		Phone:   "4155551234",
		Amount:  100,
		Purpose: "Scholarship Fund",
	}
}

func TestCreate(t *testing.T) {
	userID := uuid.New()
	repo := &memDonationRepo{}
	svc := NewService(repo, stubUserRepo{known: map[uuid.UUID]bool{userID: true}})

	d, err := svc.Create(context.Background(), validInput(userID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Phone != "(415) 555-1234" {
		t.Errorf("phone = %q, want canonical format", d.Phone)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("donation not persisted")
	}
}

func TestCreate_AmountBounds(t *testing.T) {
	userID := uuid.New()
	svc := NewService(&memDonationRepo{}, stubUserRepo{known: map[uuid.UUID]bool{userID: true}})

	cases := []struct {
		amount float64
		ok     bool
	}{
		{9.99, false},
		{10, true},
		{10000, true},
		{10000.01, false},
		{-5, false},
	}

	for _, c := range cases {
		in := validInput(userID)
		in.Amount = c.amount
		_, err := svc.Create(context.Background(), in)
		if c.ok && err != nil {
			t.Errorf("amount %.2f: unexpected err %v", c.amount, err)
		}
		if !c.ok && !errors.Is(err, ErrAmountOutOfRange) {
			t.Errorf("amount %.2f: expected ErrAmountOutOfRange, got %v", c.amount, err)
		}
	}
}

func TestCreate_UnknownUser(t *testing.T) {
	svc := NewService(&memDonationRepo{}, stubUserRepo{known: map[uuid.UUID]bool{}})

	_, err := svc.Create(context.Background(), validInput(uuid.New()))
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreate_MissingPurpose(t *testing.T) {
	userID := uuid.New()
	svc := NewService(&memDonationRepo{}, stubUserRepo{known: map[uuid.UUID]bool{userID: true}})

	in := validInput(userID)
	in.Purpose = "  "
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
