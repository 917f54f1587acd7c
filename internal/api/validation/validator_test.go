package validation

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"(987) 654-3210", "9876543210"},
		{"987.654.3210", "9876543210"},
		{"+19876543210", "19876543210"},
		{"  987 654 3210 ", "9876543210"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"(987) 654-3210", true},
		{"+9876543210123456", false}, // 16 digits after normalization
		{"987654321012345", true},   // 15 digits
		{"987654321", false},        // 9 digits
		{"98765abc10", false},       // letters survive normalization
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			if got := IsValidPhone(tt.phone); got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}
