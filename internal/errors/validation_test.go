package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("studentName", "is required", "")

	if err.Field != "studentName" {
		t.Errorf("Expected field to be 'studentName', got '%s'", err.Field)
	}

	if err.Message != "is required" {
		t.Errorf("Expected message to be 'is required', got '%s'", err.Message)
	}

	expected := "validation error on field 'studentName': is required"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("testName", "is required", nil))
	expected := "validation failed: testName is required"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("task1.answer", "is required", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}

	fields := errs.Fields()
	if len(fields) != 2 || fields[0] != "testName" || fields[1] != "task1.answer" {
		t.Errorf("Unexpected fields %v", fields)
	}
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("duration", "is required", "required", "")

	if err.Rule != "required" {
		t.Errorf("Expected rule to be 'required', got '%s'", err.Rule)
	}
}

func TestToValidationErrors(t *testing.T) {
	type inner struct {
		Answer string `validate:"required"`
	}
	type outer struct {
		Name string `validate:"required"`
		Task inner
	}

	err := validator.New().Struct(outer{})
	errs := ToValidationErrors(err)

	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}
	if errs[0].Field != "Name" || errs[0].Rule != "required" || errs[0].Message != "is required" {
		t.Errorf("Unexpected first error %+v", errs[0])
	}
	if errs[1].Field != "Task.Answer" {
		t.Errorf("Expected nested path 'Task.Answer', got '%s'", errs[1].Field)
	}
}
