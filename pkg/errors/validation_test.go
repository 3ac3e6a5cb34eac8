package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	valid := []string{"panel-1", "form-42", "splitter-7"}
	for _, id := range valid {
		if err := ValidateNodeID(id); err != nil {
			t.Errorf("ValidateNodeID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{
		"",
		"panel/1",
		"panel\\1",
		"panel\x001",
		strings.Repeat("a", 129),
	}
	for _, id := range invalid {
		if err := ValidateNodeID(id); err == nil {
			t.Errorf("ValidateNodeID(%q) accepted", id)
		}
	}
}

func TestValidateFormTitle(t *testing.T) {
	if err := ValidateFormTitle("My Chart — Q3 revenue"); err != nil {
		t.Errorf("reasonable title rejected: %v", err)
	}
	if err := ValidateFormTitle(""); err != nil {
		t.Errorf("empty title should be allowed: %v", err)
	}
	if err := ValidateFormTitle("bad\ntitle"); err == nil {
		t.Error("control characters accepted")
	}
	if err := ValidateFormTitle(strings.Repeat("a", 257)); err == nil {
		t.Error("overlong title accepted")
	}
}
