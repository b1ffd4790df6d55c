package payments

import "testing"

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusPendingReview, StatusClearing,
		StatusRejected, StatusCanceled, StatusSent, StatusReturned,
	} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if Status("Settled").Valid() {
		t.Error("Settled is not an outbound payment status")
	}
}

func TestStatus_Terminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusPending:       false,
		StatusPendingReview: false,
		StatusClearing:      false,
		StatusRejected:      true,
		StatusCanceled:      true,
		// Sent is not terminal: a sent payment can still be returned.
		StatusSent:     false,
		StatusReturned: true,
	}
	for s, want := range terminal {
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestReceivedStatus(t *testing.T) {
	for _, s := range []ReceivedStatus{
		ReceivedStatusPending, ReceivedStatusAdvanced,
		ReceivedStatusCompleted, ReceivedStatusReturned,
	} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ReceivedStatus("Clearing").Valid() {
		t.Error("Clearing belongs to the outbound lifecycle only")
	}
	if !ReceivedStatusCompleted.Terminal() || !ReceivedStatusReturned.Terminal() {
		t.Error("Completed and Returned are terminal")
	}
	if ReceivedStatusAdvanced.Terminal() {
		t.Error("Advanced is not terminal")
	}
}

func TestDirection_Valid(t *testing.T) {
	if !DirectionCredit.Valid() || !DirectionDebit.Valid() {
		t.Error("Credit and Debit are valid directions")
	}
	if Direction("Sideways").Valid() {
		t.Error("unexpected direction accepted")
	}
}
