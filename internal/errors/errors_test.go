package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Validation("ZERO_LAND_SIZE", "land size must be greater than 0")
	msg := err.Error()
	if !strings.Contains(msg, "VALIDATION_ERROR") || !strings.Contains(msg, "ZERO_LAND_SIZE") {
		t.Errorf("unexpected message: %s", msg)
	}

	wrapped := Wrap(TypeInternal, "calculation failed", fmt.Errorf("boom"))
	if !strings.Contains(wrapped.Error(), "boom") {
		t.Errorf("cause not included: %s", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(TypeInternal, "outer", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestIsType(t *testing.T) {
	err := Validation("X", "bad input")
	if !IsType(err, TypeValidation) {
		t.Error("expected TypeValidation")
	}
	if IsType(err, TypeNotFound) {
		t.Error("did not expect TypeNotFound")
	}
	if IsType(fmt.Errorf("plain"), TypeValidation) {
		t.Error("plain errors have no type")
	}
}

func TestBilingualMessage(t *testing.T) {
	err := Validation("ZERO_LAND_SIZE", "land size must be greater than 0").
		WithThai("ขนาดที่ดินต้องมากกว่า 0")
	if err.MessageThai == "" {
		t.Error("expected Thai message")
	}
}

func TestWithContext(t *testing.T) {
	err := New(TypeConfig, "bad config").
		WithContext("path", "/tmp/x.json").
		WithContext("field", "discount_rate")
	if err.Context["path"] != "/tmp/x.json" || err.Context["field"] != "discount_rate" {
		t.Errorf("context not recorded: %v", err.Context)
	}
}
