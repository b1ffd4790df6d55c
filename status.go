package payments

// Status is the lifecycle state of an outbound payment as reported by the
// banking core. The model carries the snapshot; it never performs
// transitions itself.
//
// Pending -> {PendingReview, Clearing, Rejected, Canceled} -> Sent -> Returned
type Status string

const (
	StatusPending       Status = "Pending"
	StatusPendingReview Status = "PendingReview"
	StatusClearing      Status = "Clearing"
	StatusRejected      Status = "Rejected"
	StatusCanceled      Status = "Canceled"
	StatusSent          Status = "Sent"
	StatusReturned      Status = "Returned"
)

// Valid reports whether s is a known outbound payment status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPendingReview, StatusClearing,
		StatusRejected, StatusCanceled, StatusSent, StatusReturned:
		return true
	}
	return false
}

// Terminal reports whether no further transition can occur. Sent is not
// terminal: a sent payment can still be returned.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusCanceled, StatusReturned:
		return true
	}
	return false
}

// ReceivedStatus is the lifecycle state of an inbound ACH payment.
//
// Pending -> Advanced -> Completed, or Pending -> Returned
type ReceivedStatus string

const (
	ReceivedStatusPending   ReceivedStatus = "Pending"
	ReceivedStatusAdvanced  ReceivedStatus = "Advanced"
	ReceivedStatusCompleted ReceivedStatus = "Completed"
	ReceivedStatusReturned  ReceivedStatus = "Returned"
)

// Valid reports whether s is a known received payment status.
func (s ReceivedStatus) Valid() bool {
	switch s {
	case ReceivedStatusPending, ReceivedStatusAdvanced,
		ReceivedStatusCompleted, ReceivedStatusReturned:
		return true
	}
	return false
}

// Terminal reports whether no further transition can occur.
func (s ReceivedStatus) Terminal() bool {
	return s == ReceivedStatusCompleted || s == ReceivedStatusReturned
}

// Direction indicates whether funds move to (Credit) or from (Debit) the
// counterparty.
type Direction string

const (
	DirectionCredit Direction = "Credit"
	DirectionDebit  Direction = "Debit"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// ReasonCounterpartyInsufficientFunds is set as the reason on a Rejected ACH
// payment when counterparty balance verification was requested and failed.
const ReasonCounterpartyInsufficientFunds = "CounterpartyInsufficientFunds"
