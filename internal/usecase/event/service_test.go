package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"alumni-connect/internal/domain/event"
	"alumni-connect/internal/domain/user"

	"github.com/google/uuid"
)

type memEventRepo struct {
	events map[uuid.UUID]event.Event
	regs   []event.Registration
}

func (m *memEventRepo) List(context.Context) ([]event.Event, error) {
	out := make([]event.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e)
	}
	return out, nil
}

func (m *memEventRepo) GetByID(_ context.Context, id uuid.UUID) (event.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return event.Event{}, event.ErrNotFound
	}
	return e, nil
}

func (m *memEventRepo) CountUpcoming(context.Context, time.Time) (int64, error) {
	return int64(len(m.events)), nil
}

func (m *memEventRepo) Register(_ context.Context, r event.Registration) error {
	for _, existing := range m.regs {
		if existing.UserID == r.UserID && existing.EventID == r.EventID {
			return nil
		}
	}
	m.regs = append(m.regs, r)
	return nil
}

func (m *memEventRepo) ListEventIDsByUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0)
	for _, r := range m.regs {
		if r.UserID == userID {
			out = append(out, r.EventID)
		}
	}
	return out, nil
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

type fakeCache struct {
	data map[string][]byte
	sets int
}

// GetJSON always misses; hits are covered by the stats service tests.
func (f *fakeCache) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = []byte("x")
	f.sets++
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func registrable(id uuid.UUID) event.Event {
	return event.Event{ID: id, Title: "Summit", HasRegistration: true}
}

func TestRegister(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	repo := &memEventRepo{events: map[uuid.UUID]event.Event{eventID: registrable(eventID)}}
	svc := NewService(repo, stubUserRepo{known: map[uuid.UUID]bool{userID: true}}, nil)

	in := RegisterInput{UserID: userID, EventID: eventID, Name: "Ada", Email: "ada@ex.com", Phone: "4155551234"}
	if err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(repo.regs) != 1 {
		t.Fatalf("registration not persisted")
	}
	if repo.regs[0].Phone != "(415) 555-1234" {
		t.Errorf("phone = %q, want canonical format", repo.regs[0].Phone)
	}

	// second registration for the same event is a no-op
	if err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("repeat register: %v", err)
	}
	if len(repo.regs) != 1 {
		t.Fatalf("repeat registration duplicated the row")
	}
}

func TestRegister_UnknownEvent(t *testing.T) {
	userID := uuid.New()
	repo := &memEventRepo{events: map[uuid.UUID]event.Event{}}
	svc := NewService(repo, stubUserRepo{known: map[uuid.UUID]bool{userID: true}}, nil)

	in := RegisterInput{UserID: userID, EventID: uuid.New(), Name: "Ada", Email: "ada@ex.com", Phone: "4155551234"}
	if err := svc.Register(context.Background(), in); !errors.Is(err, event.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegister_ClosedEvent(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	repo := &memEventRepo{events: map[uuid.UUID]event.Event{eventID: {ID: eventID, Title: "Golf Classic"}}}
	svc := NewService(repo, stubUserRepo{known: map[uuid.UUID]bool{userID: true}}, nil)

	in := RegisterInput{UserID: userID, EventID: eventID, Name: "Ada", Email: "ada@ex.com", Phone: "4155551234"}
	if err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for event without registration, got %v", err)
	}
}

func TestList_PopulatesCache(t *testing.T) {
	eventID := uuid.New()
	repo := &memEventRepo{events: map[uuid.UUID]event.Event{eventID: registrable(eventID)}}
	cache := &fakeCache{}
	svc := NewService(repo, stubUserRepo{}, cache)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 event, got %d", len(list))
	}
	if cache.sets != 1 {
		t.Errorf("cache not populated after miss")
	}
}
