package catalog

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		token    string
		expected Kind
	}{
		{"CERTIFICATION", Certification},
		{"DEGREE", Degree},
		{"DIPLOMA", Diploma},
		{"certification", Certification},
		{"Diploma", Diploma},
		{"MASTERS", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Parse(tt.token); got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestUnitPrice(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected float64
	}{
		{Certification, 3000},
		{Degree, 5000},
		{Diploma, 2500},
		{Unknown, 0},
		{Kind("BOOTCAMP"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := UnitPrice(tt.kind); got != tt.expected {
				t.Errorf("UnitPrice(%v) = %v, want %v", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestDiscountRate(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected float64
	}{
		{Certification, 0.02},
		{Degree, 0.03},
		{Diploma, 0.01},
		{Unknown, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := DiscountRate(tt.kind); got != tt.expected {
				t.Errorf("DiscountRate(%v) = %v, want %v", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestKind_IsKnown(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected bool
	}{
		{Certification, true},
		{Degree, true},
		{Diploma, true},
		{Unknown, false},
		{Kind("INVALID"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsKnown(); got != tt.expected {
				t.Errorf("Kind.IsKnown() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := Degree.String(); got != "DEGREE" {
		t.Errorf("Kind.String() = %v, want %v", got, "DEGREE")
	}
}
