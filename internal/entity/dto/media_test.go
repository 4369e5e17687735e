package dto

import (
	"errors"
	"strings"
	"testing"

	"medialog/internal/entity/common"
)

func validPayload() MediaPayload {
	return MediaPayload{
		Title:     "The Left Hand of Darkness",
		Author:    "Ursula K. Le Guin",
		MediaType: "book",
		StartDate: "2024-01-10",
		EndDate:   "2024-02-01",
	}
}

func TestMediaPayloadValidate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(p *MediaPayload)
		enforceRange bool
		wantKind     common.ValidationErrorKind
		wantField    string
	}{
		{
			name:   "valid payload",
			mutate: func(p *MediaPayload) {},
		},
		{
			name:      "missing title",
			mutate:    func(p *MediaPayload) { p.Title = "   " },
			wantKind:  common.KindMissingField,
			wantField: "title",
		},
		{
			name:      "missing media type",
			mutate:    func(p *MediaPayload) { p.MediaType = "" },
			wantKind:  common.KindMissingField,
			wantField: "media_type",
		},
		{
			name:      "invalid media type",
			mutate:    func(p *MediaPayload) { p.MediaType = "podcast" },
			wantKind:  common.KindInvalidValue,
			wantField: "media_type",
		},
		{
			name:      "missing start date",
			mutate:    func(p *MediaPayload) { p.StartDate = "" },
			wantKind:  common.KindMissingField,
			wantField: "start_date",
		},
		{
			name:      "malformed start date",
			mutate:    func(p *MediaPayload) { p.StartDate = "2024-1-2" },
			wantKind:  common.KindInvalidValue,
			wantField: "start_date",
		},
		{
			name:      "impossible calendar date",
			mutate:    func(p *MediaPayload) { p.StartDate = "2024-02-30" },
			wantKind:  common.KindInvalidValue,
			wantField: "start_date",
		},
		{
			name:      "malformed end date",
			mutate:    func(p *MediaPayload) { p.EndDate = "02/01/2024" },
			wantKind:  common.KindInvalidValue,
			wantField: "end_date",
		},
		{
			name:   "open ended entry",
			mutate: func(p *MediaPayload) { p.EndDate = "" },
		},
		{
			name:         "end before start rejected when enforced",
			mutate:       func(p *MediaPayload) { p.EndDate = "2023-12-31" },
			enforceRange: true,
			wantKind:     common.KindInvalidValue,
			wantField:    "end_date",
		},
		{
			name:   "end before start tolerated when not enforced",
			mutate: func(p *MediaPayload) { p.EndDate = "2023-12-31" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			err := payload.Validate(tt.enforceRange)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var validationErr *common.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, validationErr.Kind)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, validationErr.Field)
			}
		})
	}
}

func TestMediaPayloadValidateNamesOffendingType(t *testing.T) {
	payload := validPayload()
	payload.MediaType = "vinyl"
	err := payload.Validate(false)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "vinyl") {
		t.Errorf("error should name the offending value, got %q", got)
	}
}
