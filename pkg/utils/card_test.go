package utils

import (
	"errors"
	"testing"

	"jetsetter-booking/internal/domain/entity"
)

func TestValidateCardNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"valid visa test vector", "4012000098765439", true},
		{"single digit mutated", "4012000098765430", false},
		{"valid with spaces", "4111 1111 1111 1111", true},
		{"valid amex", "378282246310005", true},
		{"non-digit characters", "4111-1111-1111-1111", false},
		{"letters", "4111x11111111111", false},
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"single zero passes checksum", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCardNumber(tt.raw); got != tt.want {
				t.Fatalf("ValidateCardNumber(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseExpiry(t *testing.T) {
	t.Parallel()

	t.Run("valid MM/YY", func(t *testing.T) {
		month, year, err := ParseExpiry("12/25")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if month != 12 || year != 2025 {
			t.Fatalf("expected 12/2025, got %d/%d", month, year)
		}
	})

	t.Run("single digit month", func(t *testing.T) {
		month, year, err := ParseExpiry("3/27")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if month != 3 || year != 2027 {
			t.Fatalf("expected 3/2027, got %d/%d", month, year)
		}
	})

	t.Run("month out of range", func(t *testing.T) {
		_, _, err := ParseExpiry("13/25")
		if !errors.Is(err, entity.ErrExpiryFormat) {
			t.Fatalf("expected ErrExpiryFormat, got %v", err)
		}
	})

	t.Run("month zero", func(t *testing.T) {
		_, _, err := ParseExpiry("0/25")
		if !errors.Is(err, entity.ErrExpiryFormat) {
			t.Fatalf("expected ErrExpiryFormat, got %v", err)
		}
	})

	t.Run("no slash", func(t *testing.T) {
		_, _, err := ParseExpiry("1225")
		if !errors.Is(err, entity.ErrExpiryFormat) {
			t.Fatalf("expected ErrExpiryFormat, got %v", err)
		}
	})

	t.Run("too many parts", func(t *testing.T) {
		_, _, err := ParseExpiry("12/25/26")
		if !errors.Is(err, entity.ErrExpiryFormat) {
			t.Fatalf("expected ErrExpiryFormat, got %v", err)
		}
	})

	t.Run("non-numeric month", func(t *testing.T) {
		_, _, err := ParseExpiry("ab/25")
		if !errors.Is(err, entity.ErrExpiryFormat) {
			t.Fatalf("expected ErrExpiryFormat, got %v", err)
		}
	})

	t.Run("non-numeric year", func(t *testing.T) {
		_, _, err := ParseExpiry("12/xy")
		if !errors.Is(err, entity.ErrExpiryFormat) {
			t.Fatalf("expected ErrExpiryFormat, got %v", err)
		}
	})
}

func TestMaskCardNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"full number", "4012000098765439", "****5439"},
		{"with spaces", "4111 1111 1111 1111", "****1111"},
		{"exactly four digits", "5439", "****5439"},
		{"shorter than four", "12", "****"},
		{"empty", "", "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskCardNumber(tt.raw); got != tt.want {
				t.Fatalf("MaskCardNumber(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
