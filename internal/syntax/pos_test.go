package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"with filename", NewPos("ejemplo.js", 10, 5), "ejemplo.js:10:5"},
		{"without filename", NewPos("", 10, 5), "10:5"},
		{"line 1 col 1", NewPos("main.js", 1, 1), "main.js:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{"valid position", NewPos("test.js", 1, 1), true},
		{"valid position line 100", NewPos("", 100, 50), true},
		{"invalid - zero line", NewPos("test.js", 0, 1), false},
		{"invalid - zero value", Pos{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosGetters(t *testing.T) {
	pos := NewPos("test.js", 42, 13)

	if got := pos.Line(); got != 42 {
		t.Errorf("Pos.Line() = %d, want 42", got)
	}
	if got := pos.Col(); got != 13 {
		t.Errorf("Pos.Col() = %d, want 13", got)
	}
	if got := pos.Filename(); got != "test.js" {
		t.Errorf("Pos.Filename() = %q, want %q", got, "test.js")
	}
}

func TestPosBefore(t *testing.T) {
	tests := []struct {
		p, q Pos
		want bool
	}{
		{NewPos("", 1, 1), NewPos("", 1, 2), true},
		{NewPos("", 1, 9), NewPos("", 2, 1), true},
		{NewPos("", 2, 1), NewPos("", 1, 9), false},
		{NewPos("", 3, 3), NewPos("", 3, 3), false},
	}

	for _, tt := range tests {
		if got := tt.p.Before(tt.q); got != tt.want {
			t.Errorf("%s.Before(%s) = %v, want %v", tt.p, tt.q, got, tt.want)
		}
	}
}
