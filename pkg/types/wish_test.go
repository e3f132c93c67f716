package types

import "testing"

func TestPinPtr(t *testing.T) {
	if PinPtr("") != nil {
		t.Error("empty pin should map to nil")
	}

	p := PinPtr("4821")
	if p == nil || *p != "4821" {
		t.Errorf("PinPtr(4821) = %v", p)
	}

	w := Wish{Pin: p}
	if !w.IsProtected() {
		t.Error("wish with pin should be protected")
	}
	if (Wish{}).IsProtected() {
		t.Error("wish without pin should not be protected")
	}
}
