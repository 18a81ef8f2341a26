package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"", // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "today"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"08:00", "23:59", "00:00"}
	invalid := []string{"24:00", "8:00:00pm", "0800", "", "noon"}
	for _, s := range valid {
		if _, ok := IsValidClock(s); !ok {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidClock(s); ok {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"ENTRY", "EXIT"}
	if !IsInSlice("ENTRY", slice) {
		t.Error("IsInSlice(ENTRY) = false, want true")
	}
	if IsInSlice("entry", slice) {
		t.Error("IsInSlice(entry) = true, want false")
	}
}
