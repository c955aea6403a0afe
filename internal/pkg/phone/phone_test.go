package phone

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"415", "415"},
		{"4155", "(415) 5"},
		{"415555", "(415) 555"},
		{"4155551", "(415) 555-1"},
		{"4155551234", "(415) 555-1234"},
		{"415-555-1234", "(415) 555-1234"},
		{"+1 415 555 1234 x99", "(141) 555-5123"},
		{"abc", ""},
	}

	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	formatted := Format("4155551234")
	if formatted != "(415) 555-1234" {
		t.Fatalf("unexpected canonical form: %q", formatted)
	}
	if again := Format(formatted); again != formatted {
		t.Fatalf("not idempotent: %q -> %q", formatted, again)
	}
}
