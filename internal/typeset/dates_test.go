package typeset

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2023-05", "2023-05-01"},
		{"2023-05-17", "2023-05-17"},
		{"", ""},
		{"May 2023", "May 2023"},
		{"2023", "2023"},
		{"2023-5", "2023-5"},
		{"2023-05-17T00:00:00", "2023-05-17T00:00:00"},
	}
	for _, tt := range tests {
		if got := NormalizeDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	inputs := []string{"2023-05", "2023-05-17", "", "garbage", "1999-12"}
	for _, in := range inputs {
		once := NormalizeDate(in)
		if twice := NormalizeDate(once); twice != once {
			t.Errorf("NormalizeDate not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
