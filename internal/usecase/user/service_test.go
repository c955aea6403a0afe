package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"alumni-connect/internal/domain/donation"
	"alumni-connect/internal/domain/event"
	"alumni-connect/internal/domain/user"

	"github.com/google/uuid"
)

type memUserRepo struct {
	byID map[uuid.UUID]user.User
}

func (m *memUserRepo) Create(_ context.Context, u user.User) error {
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

func (m *memUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
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

type stubEventRepo struct {
	idsByUser map[uuid.UUID][]uuid.UUID
}

func (s stubEventRepo) List(context.Context) ([]event.Event, error) { return nil, nil }
func (s stubEventRepo) GetByID(context.Context, uuid.UUID) (event.Event, error) {
	return event.Event{}, event.ErrNotFound
}
func (s stubEventRepo) CountUpcoming(context.Context, time.Time) (int64, error) { return 0, nil }
func (s stubEventRepo) Register(context.Context, event.Registration) error      { return nil }
func (s stubEventRepo) ListEventIDsByUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.idsByUser[userID], nil
}

type stubDonationRepo struct {
	byUser map[uuid.UUID][]donation.Donation
}

func (s stubDonationRepo) Create(context.Context, donation.Donation) error { return nil }
func (s stubDonationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]donation.Donation, error) {
	return s.byUser[userID], nil
}
func (s stubDonationRepo) Count(context.Context) (int64, error) { return 0, nil }

func seededService(t *testing.T) (*Service, user.User) {
	t.Helper()
	repo := &memUserRepo{byID: map[uuid.UUID]user.User{}}
	u := user.User{
		ID:           uuid.New(),
		FullName:     "Ada Lovelace",
		Email:        "ada@ex.com",
		PasswordHash: "x",
		University:   user.DefaultUniversity,
		PassoutYear:  2010,
		Location:     "NYC",
		Company:      "Acme",
		Domain:       "Tech",
		Phone:        "(415) 555-1234",
	}
	repo.byID[u.ID] = u
	svc := NewService(repo, stubEventRepo{idsByUser: map[uuid.UUID][]uuid.UUID{}}, stubDonationRepo{byUser: map[uuid.UUID][]donation.Donation{}})
	return svc, u
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	svc, u := seededService(t)

	loc := "X"
	snap, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Location: &loc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if snap.Location != "X" {
		t.Errorf("location = %q, want X", snap.Location)
	}

	got, err := svc.GetUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Location != "X" {
		t.Errorf("location not persisted")
	}
	if got.FullName != u.FullName || got.Company != u.Company || got.Domain != u.Domain ||
		got.Phone != u.Phone || got.Email != u.Email || got.PassoutYear != u.PassoutYear {
		t.Errorf("unrelated fields changed: %+v", got.User)
	}
}

func TestUpdateProfile_PhoneReformatted(t *testing.T) {
	svc, u := seededService(t)

	raw := "415-555-9999"
	snap, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Phone: &raw})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if snap.Phone != "(415) 555-9999" {
		t.Errorf("phone = %q, want reformatted", snap.Phone)
	}

	// formatting an already-canonical phone is a no-op
	again := snap.Phone
	snap2, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Phone: &again})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if snap2.Phone != snap.Phone {
		t.Errorf("formatting not idempotent: %q -> %q", snap.Phone, snap2.Phone)
	}
}

func TestUpdateProfile_EmptyPatch(t *testing.T) {
	svc, u := seededService(t)

	if _, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateProfile_UnknownID(t *testing.T) {
	svc, _ := seededService(t)

	name := "Grace"
	if _, err := svc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{FullName: &name}); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUser_SnapshotJoinsCollections(t *testing.T) {
	repo := &memUserRepo{byID: map[uuid.UUID]user.User{}}
	u := user.User{ID: uuid.New(), FullName: "Ada", Email: "ada@ex.com", PasswordHash: "x"}
	repo.byID[u.ID] = u

	evtID := uuid.New()
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := NewService(repo,
		stubEventRepo{idsByUser: map[uuid.UUID][]uuid.UUID{u.ID: {evtID}}},
		stubDonationRepo{byUser: map[uuid.UUID][]donation.Donation{u.ID: {{
			ID: uuid.New(), UserID: u.ID, Purpose: "Scholarship Fund", Amount: 50, CreatedAt: when,
		}}}},
	)

	snap, err := svc.GetUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.PasswordHash != "" {
		t.Errorf("password hash present in snapshot")
	}
	if len(snap.RegisteredEvents) != 1 || snap.RegisteredEvents[0] != evtID {
		t.Errorf("registered events = %v", snap.RegisteredEvents)
	}
	if len(snap.Donations) != 1 {
		t.Fatalf("donations = %v", snap.Donations)
	}
	d := snap.Donations[0]
	if d.Purpose != "Scholarship Fund" || d.Amount != 50 || !d.Timestamp.Equal(when) {
		t.Errorf("donation record = %+v", d)
	}
}

func TestListAlumni_PasswordFree(t *testing.T) {
	svc, _ := seededService(t)

	list, err := svc.ListAlumni(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(list))
	}
	if list[0].PasswordHash != "" {
		t.Errorf("password hash present in directory")
	}
}
