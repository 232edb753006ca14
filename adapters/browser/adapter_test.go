package browser

import (
	"errors"
	"testing"

	qerrors "solar-quote/internal/errors"
)

func TestOpenValidatesURL(t *testing.T) {
	var opened []string
	o := &BrowserOpener{open: func(u string) error {
		opened = append(opened, u)
		return nil
	}}

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com/contact", false},
		{"http://example.com", false},
		{"", true},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := o.Open(tt.url)
			if tt.wantErr && !qerrors.IsType(err, qerrors.TypeInvalidInput) {
				t.Errorf("expected invalid input, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	if len(opened) != 2 {
		t.Errorf("expected 2 launches, got %v", opened)
	}
}

func TestOpenReportsLauncherFailure(t *testing.T) {
	o := &BrowserOpener{open: func(string) error { return errors.New("xdg-open not found") }}

	err := o.Open("https://example.com")
	if !qerrors.IsType(err, qerrors.TypeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
