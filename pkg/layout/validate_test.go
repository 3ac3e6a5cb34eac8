package layout

import (
	"errors"
	"testing"
)

func TestValidateAcceptsEmptyRootPanel(t *testing.T) {
	if err := Validate(NewPanelWithID("panel-1")); err != nil {
		t.Errorf("empty root panel should be valid: %v", err)
	}
}

func TestValidateRejectsEmptyPanelBelowRoot(t *testing.T) {
	empty := NewPanelWithID("panel-1")
	full := NewPanelWithID("panel-2", &Form{ID: "form-3", Title: "a"})
	split, _ := NewSplitterWithID("splitter-4", empty, full, Horizontal, 50)

	if err := Validate(split); !errors.Is(err, ErrEmptyPanel) {
		t.Errorf("err = %v, want ErrEmptyPanel", err)
	}
}

func TestValidateRejectsDuplicateNodeID(t *testing.T) {
	a := NewPanelWithID("panel-1", &Form{ID: "form-2", Title: "a"})
	b := NewPanelWithID("panel-1", &Form{ID: "form-3", Title: "b"})
	split, _ := NewSplitterWithID("splitter-4", a, b, Horizontal, 50)

	if err := Validate(split); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("err = %v, want ErrDuplicateNodeID", err)
	}
}

func TestValidateRejectsDuplicateForm(t *testing.T) {
	a := NewPanelWithID("panel-1", &Form{ID: "form-0", Title: "a"})
	b := NewPanelWithID("panel-2", &Form{ID: "form-0", Title: "b"})
	split, _ := NewSplitterWithID("splitter-3", a, b, Horizontal, 50)

	if err := Validate(split); !errors.Is(err, ErrDuplicateForm) {
		t.Errorf("err = %v, want ErrDuplicateForm", err)
	}
}

func TestValidateRejectsAliasedChildren(t *testing.T) {
	p := NewPanelWithID("panel-1", &Form{ID: "form-2", Title: "a"})
	// NewSplitterWithID refuses this shape, so build it directly.
	split := &Splitter{id: "splitter-3", Primary: p, Secondary: p, Direction: Horizontal, Size: 50}

	err := Validate(split)
	if err == nil {
		t.Fatal("aliased children accepted")
	}
	// Either the topology or the duplicate-id check may fire first; both
	// identify the same corruption.
	if !errors.Is(err, ErrInvalidTopology) && !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("err = %v, want ErrInvalidTopology or ErrDuplicateNodeID", err)
	}
}

func TestValidateRejectsNilChild(t *testing.T) {
	split := &Splitter{id: "splitter-1", Primary: NewPanelWithID("panel-2", &Form{ID: "form-3"})}
	if err := Validate(split); !errors.Is(err, ErrNilChild) {
		t.Errorf("err = %v, want ErrNilChild", err)
	}
	if err := Validate(nil); !errors.Is(err, ErrNilChild) {
		t.Errorf("nil root: err = %v, want ErrNilChild", err)
	}
}
