package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestViolationsCollect(t *testing.T) {
	v := Violations{}
	if !v.Empty() {
		t.Error("fresh violations must be empty")
	}

	v.Add("slug", "slug is required")
	v.Add("slug", "slug must be between 2 and 50 characters")
	v.Add("name", "name is required")

	if v.Empty() {
		t.Error("expected recorded violations")
	}
	if len(v["slug"]) != 2 {
		t.Errorf("expected 2 slug messages, got %d", len(v["slug"]))
	}

	err := Validation(v)
	if err.Code != CodeValidation {
		t.Errorf("expected validation code, got %s", err.Code)
	}
	if len(err.Fields["name"]) != 1 {
		t.Errorf("expected name violation to survive, got %v", err.Fields)
	}
}

func TestErrorStringIncludesFields(t *testing.T) {
	err := Validation(Violations{
		"slug": {"slug is required"},
		"name": {"name is required"},
	})

	if got, want := err.Error(), "validation failed (name, slug)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFromUnwrapsChain(t *testing.T) {
	inner := NotFound("role %q not found", "qa")
	wrapped := fmt.Errorf("handling request: %w", inner)

	appErr, ok := From(wrapped)
	if !ok {
		t.Fatal("expected structured error in chain")
	}
	if appErr.Code != CodeNotFound {
		t.Errorf("expected not_found, got %s", appErr.Code)
	}

	if _, ok := From(errors.New("plain")); ok {
		t.Error("plain errors must not convert")
	}
}

func TestIsCode(t *testing.T) {
	err := Conflict("slug", "slug already in use")
	if !IsCode(err, CodeConflict) {
		t.Error("expected conflict code match")
	}
	if IsCode(err, CodeForbidden) {
		t.Error("unexpected forbidden match")
	}
	if IsCode(nil, CodeConflict) {
		t.Error("nil error must not match")
	}
}
