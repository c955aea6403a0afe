package feedback

import (
	"context"
	"errors"
	"testing"

	"alumni-connect/internal/domain/feedback"

	"github.com/google/uuid"
)

type memFeedbackRepo struct {
	stored []feedback.Feedback
}

func (m *memFeedbackRepo) Create(_ context.Context, f feedback.Feedback) error {
	m.stored = append(m.stored, f)
	return nil
}

func TestSubmit(t *testing.T) {
	repo := &memFeedbackRepo{}
	svc := NewService(repo)

	f, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "  Ada Lovelace  ",
		Email:   "ada@ex.com",
		Message: "Loved the summit!",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.Name != "Ada Lovelace" {
		t.Errorf("name = %q, want trimmed", f.Name)
	}
	if f.ID == uuid.Nil {
		t.Errorf("id not assigned")
	}
	if len(repo.stored) != 1 {
		t.Fatalf("feedback not persisted")
	}
}

func TestSubmit_Invalid(t *testing.T) {
	svc := NewService(&memFeedbackRepo{})

	cases := []struct {
		name string
		in   SubmitInput
	}{
		{"missing name", SubmitInput{Email: "ada@ex.com", Message: "hi"}},
		{"missing email", SubmitInput{Name: "Ada", Message: "hi"}},
		{"blank message", SubmitInput{Name: "Ada", Email: "ada@ex.com", Message: "   "}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := svc.Submit(context.Background(), c.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
