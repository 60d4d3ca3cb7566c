package handler

import (
	"errors"
	"testing"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

func TestUpdateJobRequest_RejectsBlankRequiredFields(t *testing.T) {
	v := NewValidator()
	empty := ""

	err := v.Validate(&updateJobRequest{Company: &empty, Position: &empty})

	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for blank company/position, got %v", err)
	}
	if len(vErr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", vErr.Fields)
	}
	for _, fe := range vErr.Fields {
		if fe.Field != "company" && fe.Field != "position" {
			t.Fatalf("unexpected field in errors: %+v", fe)
		}
	}
}

func TestUpdateJobRequest_NilFieldsPass(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&updateJobRequest{}); err != nil {
		t.Fatalf("an all-nil partial update must pass validation, got %v", err)
	}
}

func TestUpdateJobRequest_PresentFieldsValidated(t *testing.T) {
	v := NewValidator()
	company := "Acme"
	badURL := "not a url"

	if err := v.Validate(&updateJobRequest{Company: &company}); err != nil {
		t.Fatalf("valid partial update rejected: %v", err)
	}

	err := v.Validate(&updateJobRequest{JobURL: &badURL})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for malformed job_url, got %v", err)
	}
}
