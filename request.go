package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf8"
)

// CreatePaymentRequest is the closed set of payment creation payloads. Every
// variant marshals to the {type, attributes, relationships} body the
// payments API expects; the three ACH shapes all carry the achPayment
// discriminator and differ only in how the counterparty is specified.
type CreatePaymentRequest interface {
	Type() string
	Validate() error
	isCreatePaymentRequest()
}

// --- wire ---

// CreateWirePaymentRequest originates a wire. The counterparty is supplied
// inline; wires have no stored counterparty reference.
type CreateWirePaymentRequest struct {
	Attributes    WirePaymentRequestAttributes    `json:"attributes"`
	Relationships WirePaymentRequestRelationships `json:"relationships"`
}

type WirePaymentRequestAttributes struct {
	Amount         int64            `json:"amount"`
	Description    string           `json:"description"`
	Counterparty   WireCounterparty `json:"counterparty"`
	IdempotencyKey string           `json:"idempotencyKey,omitempty"`
	Tags           Tags             `json:"tags,omitempty"`
}

type WirePaymentRequestRelationships struct {
	Account Relationship `json:"account"`
}

func (*CreateWirePaymentRequest) Type() string            { return TypeWirePayment }
func (*CreateWirePaymentRequest) isCreatePaymentRequest() {}

func (r *CreateWirePaymentRequest) Validate() error {
	if err := checkAmount(r.Attributes.Amount); err != nil {
		return err
	}
	if err := checkDescription(r.Attributes.Description, maxDescriptionWire); err != nil {
		return err
	}
	if f := r.Attributes.Counterparty.validate("attributes.counterparty"); f != nil {
		return f.validation()
	}
	if f := r.Relationships.Account.check("relationships.account", RefTypeDepositAccount); f != nil {
		return f.validation()
	}
	return nil
}

func (r *CreateWirePaymentRequest) MarshalJSON() ([]byte, error) {
	type alias CreateWirePaymentRequest
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeWirePayment, (*alias)(r)})
}

// --- book ---

// CreateBookPaymentRequest moves funds to another account held at Wakala.
// The counterparty account is a stored reference, never inline. Direction is
// optional; the backend defaults it when absent.
type CreateBookPaymentRequest struct {
	Attributes    BookPaymentRequestAttributes    `json:"attributes"`
	Relationships BookPaymentRequestRelationships `json:"relationships"`
}

type BookPaymentRequestAttributes struct {
	Amount         int64     `json:"amount"`
	Direction      Direction `json:"direction,omitempty"`
	Description    string    `json:"description"`
	IdempotencyKey string    `json:"idempotencyKey,omitempty"`
	Tags           Tags      `json:"tags,omitempty"`
}

type BookPaymentRequestRelationships struct {
	Account             Relationship `json:"account"`
	CounterpartyAccount Relationship `json:"counterpartyAccount"`
}

func (*CreateBookPaymentRequest) Type() string            { return TypeBookPayment }
func (*CreateBookPaymentRequest) isCreatePaymentRequest() {}

func (r *CreateBookPaymentRequest) Validate() error {
	if err := checkAmount(r.Attributes.Amount); err != nil {
		return err
	}
	if d := r.Attributes.Direction; d != "" && !d.Valid() {
		return &ValidationError{Field: "attributes.direction", Constraint: `must be "Credit" or "Debit"`}
	}
	if err := checkDescription(r.Attributes.Description, maxDescriptionBook); err != nil {
		return err
	}
	if f := r.Relationships.Account.check("relationships.account", RefTypeDepositAccount); f != nil {
		return f.validation()
	}
	if f := r.Relationships.CounterpartyAccount.check("relationships.counterpartyAccount", RefTypeDepositAccount); f != nil {
		return f.validation()
	}
	return nil
}

func (r *CreateBookPaymentRequest) MarshalJSON() ([]byte, error) {
	type alias CreateBookPaymentRequest
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeBookPayment, (*alias)(r)})
}

// --- ACH, inline counterparty ---

// CreateACHPaymentRequest originates an ACH entry against a counterparty
// supplied inline.
type CreateACHPaymentRequest struct {
	Attributes    ACHPaymentRequestAttributes    `json:"attributes"`
	Relationships ACHPaymentRequestRelationships `json:"relationships"`
}

type ACHPaymentRequestAttributes struct {
	Amount       int64        `json:"amount"`
	Direction    Direction    `json:"direction"`
	Counterparty Counterparty `json:"counterparty"`
	Description  string       `json:"description"`
	Addenda      string       `json:"addenda,omitempty"`
	// VerifyCounterpartyBalance asks the backend to confirm the counterparty
	// holds sufficient funds before originating. When verification fails the
	// payment is created Rejected with reason
	// ReasonCounterpartyInsufficientFunds.
	VerifyCounterpartyBalance bool   `json:"verifyCounterpartyBalance,omitempty"`
	IdempotencyKey            string `json:"idempotencyKey,omitempty"`
	Tags                      Tags   `json:"tags,omitempty"`
}

type ACHPaymentRequestRelationships struct {
	Account Relationship `json:"account"`
}

func (*CreateACHPaymentRequest) Type() string            { return TypeACHPayment }
func (*CreateACHPaymentRequest) isCreatePaymentRequest() {}

func (r *CreateACHPaymentRequest) Validate() error {
	if err := validateACHCommon(r.Attributes.Amount, r.Attributes.Direction, r.Attributes.Description, r.Attributes.Addenda); err != nil {
		return err
	}
	if f := r.Attributes.Counterparty.validate("attributes.counterparty"); f != nil {
		return f.validation()
	}
	if f := r.Relationships.Account.check("relationships.account", RefTypeDepositAccount); f != nil {
		return f.validation()
	}
	return nil
}

func (r *CreateACHPaymentRequest) MarshalJSON() ([]byte, error) {
	type alias CreateACHPaymentRequest
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeACHPayment, (*alias)(r)})
}

// --- ACH, stored counterparty ---

// CreateLinkedPaymentRequest originates an ACH entry against a stored
// counterparty, referenced by id instead of supplied inline.
type CreateLinkedPaymentRequest struct {
	Attributes    LinkedPaymentRequestAttributes    `json:"attributes"`
	Relationships LinkedPaymentRequestRelationships `json:"relationships"`
}

type LinkedPaymentRequestAttributes struct {
	Amount      int64     `json:"amount"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
	Addenda     string    `json:"addenda,omitempty"`
	// See ACHPaymentRequestAttributes.VerifyCounterpartyBalance.
	VerifyCounterpartyBalance bool   `json:"verifyCounterpartyBalance,omitempty"`
	IdempotencyKey            string `json:"idempotencyKey,omitempty"`
	Tags                      Tags   `json:"tags,omitempty"`
}

type LinkedPaymentRequestRelationships struct {
	Account      Relationship `json:"account"`
	Counterparty Relationship `json:"counterparty"`
}

func (*CreateLinkedPaymentRequest) Type() string            { return TypeACHPayment }
func (*CreateLinkedPaymentRequest) isCreatePaymentRequest() {}

func (r *CreateLinkedPaymentRequest) Validate() error {
	if err := validateACHCommon(r.Attributes.Amount, r.Attributes.Direction, r.Attributes.Description, r.Attributes.Addenda); err != nil {
		return err
	}
	if f := r.Relationships.Account.check("relationships.account", RefTypeDepositAccount); f != nil {
		return f.validation()
	}
	if f := r.Relationships.Counterparty.check("relationships.counterparty", RefTypeCounterparty); f != nil {
		return f.validation()
	}
	return nil
}

func (r *CreateLinkedPaymentRequest) MarshalJSON() ([]byte, error) {
	type alias CreateLinkedPaymentRequest
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeACHPayment, (*alias)(r)})
}

// --- ACH, externally verified counterparty ---

// CreateVerifiedPaymentRequest originates an ACH entry against a
// counterparty linked through the external account-verification provider.
// The processor token stands in for both inline and stored counterparty
// data.
type CreateVerifiedPaymentRequest struct {
	Attributes    VerifiedPaymentRequestAttributes    `json:"attributes"`
	Relationships VerifiedPaymentRequestRelationships `json:"relationships"`
}

type VerifiedPaymentRequestAttributes struct {
	Amount                    int64     `json:"amount"`
	Direction                 Direction `json:"direction"`
	Description               string    `json:"description"`
	PlaidProcessorToken       string    `json:"plaidProcessorToken"`
	CounterpartyName          string    `json:"counterpartyName,omitempty"`
	VerifyCounterpartyBalance bool      `json:"verifyCounterpartyBalance,omitempty"`
	IdempotencyKey            string    `json:"idempotencyKey,omitempty"`
	Tags                      Tags      `json:"tags,omitempty"`
}

type VerifiedPaymentRequestRelationships struct {
	Account Relationship `json:"account"`
}

func (*CreateVerifiedPaymentRequest) Type() string            { return TypeACHPayment }
func (*CreateVerifiedPaymentRequest) isCreatePaymentRequest() {}

func (r *CreateVerifiedPaymentRequest) Validate() error {
	if err := validateACHCommon(r.Attributes.Amount, r.Attributes.Direction, r.Attributes.Description, ""); err != nil {
		return err
	}
	if r.Attributes.PlaidProcessorToken == "" {
		return &ValidationError{Field: "attributes.plaidProcessorToken", Constraint: "is required"}
	}
	if f := r.Relationships.Account.check("relationships.account", RefTypeDepositAccount); f != nil {
		return f.validation()
	}
	return nil
}

func (r *CreateVerifiedPaymentRequest) MarshalJSON() ([]byte, error) {
	type alias CreateVerifiedPaymentRequest
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeACHPayment, (*alias)(r)})
}

// --- construction ---

// BuildRequest assembles and validates a creation request from untyped
// attribute and relationship sets. typ selects the request family; within
// the achPayment family the counterparty-specification mechanism present in
// the input selects between the inline, linked and verified shapes. Exactly
// one mechanism must be supplied.
func BuildRequest(typ string, attributes map[string]any, relationships map[string]Relationship) (CreatePaymentRequest, error) {
	switch typ {
	case TypeWirePayment:
		var req CreateWirePaymentRequest
		if err := decodeRequestAttributes(attributes, &req.Attributes); err != nil {
			return nil, err
		}
		if err := allowRels(relationships, "account"); err != nil {
			return nil, err
		}
		req.Relationships.Account = relationships["account"]
		if err := req.Validate(); err != nil {
			return nil, err
		}
		return &req, nil

	case TypeBookPayment:
		var req CreateBookPaymentRequest
		if err := decodeRequestAttributes(attributes, &req.Attributes); err != nil {
			return nil, err
		}
		if err := allowRels(relationships, "account", "counterpartyAccount"); err != nil {
			return nil, err
		}
		req.Relationships.Account = relationships["account"]
		req.Relationships.CounterpartyAccount = relationships["counterpartyAccount"]
		if err := req.Validate(); err != nil {
			return nil, err
		}
		return &req, nil

	case TypeACHPayment:
		return buildACHRequest(attributes, relationships)

	case "":
		return nil, &ValidationError{Field: "type", Constraint: "is required"}
	default:
		return nil, &ValidationError{Field: "type", Constraint: fmt.Sprintf("unknown payment request type %q", typ)}
	}
}

// buildACHRequest dispatches between the three ACH request shapes on the
// counterparty-specification mechanism present in the input.
func buildACHRequest(attributes map[string]any, relationships map[string]Relationship) (CreatePaymentRequest, error) {
	_, inline := attributes["counterparty"]
	_, token := attributes["plaidProcessorToken"]
	_, linked := relationships["counterparty"]

	mechanisms := 0
	for _, set := range []bool{inline, token, linked} {
		if set {
			mechanisms++
		}
	}
	if mechanisms != 1 {
		return nil, &ValidationError{
			Field:      "counterparty",
			Constraint: "exactly one of an inline counterparty, a counterparty relationship or a plaidProcessorToken must be supplied",
		}
	}

	switch {
	case inline:
		var req CreateACHPaymentRequest
		if err := decodeRequestAttributes(attributes, &req.Attributes); err != nil {
			return nil, err
		}
		if err := allowRels(relationships, "account"); err != nil {
			return nil, err
		}
		req.Relationships.Account = relationships["account"]
		if err := req.Validate(); err != nil {
			return nil, err
		}
		return &req, nil

	case linked:
		var req CreateLinkedPaymentRequest
		if err := decodeRequestAttributes(attributes, &req.Attributes); err != nil {
			return nil, err
		}
		if err := allowRels(relationships, "account", "counterparty"); err != nil {
			return nil, err
		}
		req.Relationships.Account = relationships["account"]
		req.Relationships.Counterparty = relationships["counterparty"]
		if err := req.Validate(); err != nil {
			return nil, err
		}
		return &req, nil

	default: // token
		var req CreateVerifiedPaymentRequest
		if err := decodeRequestAttributes(attributes, &req.Attributes); err != nil {
			return nil, err
		}
		if err := allowRels(relationships, "account"); err != nil {
			return nil, err
		}
		req.Relationships.Account = relationships["account"]
		if err := req.Validate(); err != nil {
			return nil, err
		}
		return &req, nil
	}
}

// --- helpers ---

func validateACHCommon(amount int64, direction Direction, description, addenda string) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if direction == "" {
		return &ValidationError{Field: "attributes.direction", Constraint: "is required"}
	}
	if !direction.Valid() {
		return &ValidationError{Field: "attributes.direction", Constraint: `must be "Credit" or "Debit"`}
	}
	if err := checkDescription(description, maxDescriptionACH); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(addenda); n > maxAddenda {
		return &ValidationError{Field: "attributes.addenda", Constraint: fmt.Sprintf("must be at most %d characters, got %d", maxAddenda, n)}
	}
	return nil
}

func checkAmount(amount int64) error {
	if amount <= 0 {
		return &ValidationError{Field: "attributes.amount", Constraint: "must be a positive integer"}
	}
	return nil
}

func checkDescription(s string, max int) error {
	if s == "" {
		return &ValidationError{Field: "attributes.description", Constraint: "is required"}
	}
	// Ceilings count characters, not bytes.
	if n := utf8.RuneCountInString(s); n > max {
		return &ValidationError{Field: "attributes.description", Constraint: fmt.Sprintf("must be at most %d characters, got %d", max, n)}
	}
	return nil
}

// decodeRequestAttributes round-trips the untyped attribute set through JSON
// into the request's typed attribute struct, rejecting fields the shape does
// not carry.
func decodeRequestAttributes(attrs map[string]any, dst any) error {
	buf, err := json.Marshal(attrs)
	if err != nil {
		return &ValidationError{Field: "attributes", Constraint: err.Error()}
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ValidationError{Field: "attributes", Constraint: err.Error()}
	}
	return nil
}

func allowRels(rels map[string]Relationship, allowed ...string) error {
	for name := range rels {
		if !slices.Contains(allowed, name) {
			return &ValidationError{Field: "relationships." + name, Constraint: "is not allowed for this request type"}
		}
	}
	return nil
}
