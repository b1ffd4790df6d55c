package payments

import (
	"errors"
	"testing"
)

func TestNarrow(t *testing.T) {
	p := parseFixture(t, validACHPayment)

	ach, err := Narrow[*ACHPayment](p)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ach.Attributes.Amount != 12500 {
		t.Errorf("expected amount 12500, got %d", ach.Attributes.Amount)
	}
}

func TestNarrow_Mismatch(t *testing.T) {
	p := parseFixture(t, validACHPayment)

	_, err := Narrow[*WirePayment](p)
	if err == nil {
		t.Fatal("expected type mismatch error, got none")
	}
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected *TypeMismatchError, got %T: %v", err, err)
	}
	if tm.Want != TypeWirePayment {
		t.Errorf("expected want wirePayment, got %s", tm.Want)
	}
	if tm.Got != TypeACHPayment {
		t.Errorf("expected got achPayment, got %s", tm.Got)
	}
}
