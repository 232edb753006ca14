package errors

import (
	"fmt"
	"testing"
)

func TestIsTypeUnwrapsChains(t *testing.T) {
	base := DivisionByZero("monthly savings are zero")
	wrapped := fmt.Errorf("payback: %w", base)

	if !IsType(wrapped, TypeDivisionByZero) {
		t.Fatalf("expected wrapped error to be %s", TypeDivisionByZero)
	}
	if IsType(wrapped, TypeMissingPrerequisite) {
		t.Fatalf("wrapped error matched the wrong type")
	}
	if IsType(nil, TypeDivisionByZero) {
		t.Fatalf("nil error must not match any type")
	}
	if got := MessageOf(wrapped); got != "monthly savings are zero" {
		t.Errorf("MessageOf = %q", got)
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  MissingPrerequisite("compute cost first"),
			want: "[MISSING_PREREQUISITE] compute cost first",
		},
		{
			name: "with cause",
			err:  Persistence("save record", fmt.Errorf("disk full")),
			want: "[PERSISTENCE_ERROR] save record: disk full",
		},
		{
			name: "invalid input",
			err:  InvalidInput("consumption", "abc"),
			want: `[INVALID_INPUT] invalid value for consumption: "abc" is not a valid number`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithContext(t *testing.T) {
	err := InvalidInput("rate", "x")
	if err.Context["field"] != "rate" {
		t.Errorf("expected field context, got %v", err.Context)
	}
	if !err.Is(TypeInvalidInput) {
		t.Errorf("expected Is(TypeInvalidInput)")
	}
}
