package payments

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func wireCounterpartyAttr() map[string]any {
	return map[string]any{
		"routingNumber": "812345678",
		"accountNumber": "1000000001",
		"name":          "Acme Property Management",
		"address": map[string]any{
			"street":     "20 Ingram St",
			"city":       "Forest Hills",
			"state":      "NY",
			"postalCode": "11375",
			"country":    "US",
		},
	}
}

func achCounterpartyAttr() map[string]any {
	return map[string]any{
		"routingNumber": "812345678",
		"accountNumber": "1000000001",
		"accountType":   "Checking",
		"name":          "Jane Smith",
	}
}

func accountRel() map[string]Relationship {
	return map[string]Relationship{
		"account": {Type: RefTypeDepositAccount, ID: "acc_1"},
	}
}

// expectValidationError asserts the build failed with a ValidationError at
// field.
func expectValidationError(t *testing.T, err error, field string) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error at %q, got none", field)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if ve.Field != field {
		t.Fatalf("expected error at %q, got %q (%s)", field, ve.Field, ve.Constraint)
	}
	return ve
}

func TestBuildRequest_Wire(t *testing.T) {
	req, err := BuildRequest(TypeWirePayment, map[string]any{
		"amount":       1000,
		"description":  "rent",
		"counterparty": wireCounterpartyAttr(),
	}, accountRel())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	wire, ok := req.(*CreateWirePaymentRequest)
	if !ok {
		t.Fatalf("expected *CreateWirePaymentRequest, got %T", req)
	}
	if wire.Attributes.Amount != 1000 {
		t.Errorf("expected amount 1000, got %d", wire.Attributes.Amount)
	}
	if wire.Relationships.Account.ID != "acc_1" {
		t.Errorf("expected account acc_1, got %s", wire.Relationships.Account.ID)
	}
}

func TestBuildRequest_WireZeroAmount(t *testing.T) {
	_, err := BuildRequest(TypeWirePayment, map[string]any{
		"amount":       0,
		"description":  "rent",
		"counterparty": wireCounterpartyAttr(),
	}, accountRel())
	expectValidationError(t, err, "attributes.amount")
}

func TestBuildRequest_DescriptionCeilings(t *testing.T) {
	bookRels := map[string]Relationship{
		"account":             {Type: RefTypeDepositAccount, ID: "acc_1"},
		"counterpartyAccount": {Type: RefTypeDepositAccount, ID: "acc_2"},
	}

	_, err := BuildRequest(TypeBookPayment, map[string]any{
		"amount":      500,
		"description": strings.Repeat("x", 51),
	}, bookRels)
	expectValidationError(t, err, "attributes.description")

	if _, err := BuildRequest(TypeBookPayment, map[string]any{
		"amount":      500,
		"description": strings.Repeat("x", 50),
	}, bookRels); err != nil {
		t.Fatalf("50-character book description should validate, got %v", err)
	}

	_, err = BuildRequest(TypeACHPayment, map[string]any{
		"amount":       500,
		"direction":    "Debit",
		"description":  strings.Repeat("x", 11),
		"counterparty": achCounterpartyAttr(),
	}, accountRel())
	expectValidationError(t, err, "attributes.description")

	if _, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":       500,
		"direction":    "Debit",
		"description":  strings.Repeat("x", 10),
		"counterparty": achCounterpartyAttr(),
	}, accountRel()); err != nil {
		t.Fatalf("10-character ACH description should validate, got %v", err)
	}

	// Ceilings count characters, so multibyte text fills them the same way.
	if _, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":       500,
		"direction":    "Debit",
		"description":  strings.Repeat("é", 10),
		"counterparty": achCounterpartyAttr(),
	}, accountRel()); err != nil {
		t.Fatalf("10-character multibyte ACH description should validate, got %v", err)
	}
}

func TestBuildRequest_AddendaCeiling(t *testing.T) {
	inline := func(addenda string) (CreatePaymentRequest, error) {
		return BuildRequest(TypeACHPayment, map[string]any{
			"amount":       500,
			"direction":    "Debit",
			"description":  "payroll",
			"addenda":      addenda,
			"counterparty": achCounterpartyAttr(),
		}, accountRel())
	}

	_, err := inline(strings.Repeat("x", 51))
	expectValidationError(t, err, "attributes.addenda")

	if _, err := inline(strings.Repeat("x", 50)); err != nil {
		t.Fatalf("50-character addenda should validate, got %v", err)
	}

	linkedRels := map[string]Relationship{
		"account":      {Type: RefTypeDepositAccount, ID: "acc_1"},
		"counterparty": {Type: RefTypeCounterparty, ID: "cp_1"},
	}
	_, err = BuildRequest(TypeACHPayment, map[string]any{
		"amount":      500,
		"direction":   "Debit",
		"description": "payroll",
		"addenda":     strings.Repeat("x", 51),
	}, linkedRels)
	expectValidationError(t, err, "attributes.addenda")
}

func TestBuildRequest_ACHExactlyOneMechanism(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{
			"amount":      500,
			"direction":   "Debit",
			"description": "Gym dues",
		}
	}

	// None supplied.
	_, err := BuildRequest(TypeACHPayment, base(), accountRel())
	expectValidationError(t, err, "counterparty")

	// Inline + token.
	a := base()
	a["counterparty"] = achCounterpartyAttr()
	a["plaidProcessorToken"] = "processor-tok-1"
	_, err = BuildRequest(TypeACHPayment, a, accountRel())
	expectValidationError(t, err, "counterparty")

	// Inline + stored reference.
	a = base()
	a["counterparty"] = achCounterpartyAttr()
	r := accountRel()
	r["counterparty"] = Relationship{Type: RefTypeCounterparty, ID: "cp_9"}
	_, err = BuildRequest(TypeACHPayment, a, r)
	expectValidationError(t, err, "counterparty")

	// Each mechanism alone selects its shape.
	a = base()
	a["counterparty"] = achCounterpartyAttr()
	req, err := BuildRequest(TypeACHPayment, a, accountRel())
	if err != nil {
		t.Fatalf("inline: expected no error, got %v", err)
	}
	if _, ok := req.(*CreateACHPaymentRequest); !ok {
		t.Fatalf("inline: expected *CreateACHPaymentRequest, got %T", req)
	}

	r = accountRel()
	r["counterparty"] = Relationship{Type: RefTypeCounterparty, ID: "cp_9"}
	req, err = BuildRequest(TypeACHPayment, base(), r)
	if err != nil {
		t.Fatalf("linked: expected no error, got %v", err)
	}
	if _, ok := req.(*CreateLinkedPaymentRequest); !ok {
		t.Fatalf("linked: expected *CreateLinkedPaymentRequest, got %T", req)
	}

	a = base()
	a["plaidProcessorToken"] = "processor-tok-1"
	req, err = BuildRequest(TypeACHPayment, a, accountRel())
	if err != nil {
		t.Fatalf("verified: expected no error, got %v", err)
	}
	if _, ok := req.(*CreateVerifiedPaymentRequest); !ok {
		t.Fatalf("verified: expected *CreateVerifiedPaymentRequest, got %T", req)
	}
}

func TestBuildRequest_ACHDirectionRequired(t *testing.T) {
	_, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":       500,
		"description":  "Gym dues",
		"counterparty": achCounterpartyAttr(),
	}, accountRel())
	expectValidationError(t, err, "attributes.direction")
}

func TestBuildRequest_BookDirectionOptional(t *testing.T) {
	bookRels := map[string]Relationship{
		"account":             {Type: RefTypeDepositAccount, ID: "acc_1"},
		"counterpartyAccount": {Type: RefTypeDepositAccount, ID: "acc_2"},
	}

	if _, err := BuildRequest(TypeBookPayment, map[string]any{
		"amount":      500,
		"description": "Allowance",
	}, bookRels); err != nil {
		t.Fatalf("direction should be optional for book payments, got %v", err)
	}

	_, err := BuildRequest(TypeBookPayment, map[string]any{
		"amount":      500,
		"direction":   "Sideways",
		"description": "Allowance",
	}, bookRels)
	expectValidationError(t, err, "attributes.direction")
}

func TestBuildRequest_UnknownType(t *testing.T) {
	_, err := BuildRequest("cardPayment", map[string]any{"amount": 1}, nil)
	expectValidationError(t, err, "type")
}

func TestBuildRequest_UnknownAttributeRejected(t *testing.T) {
	_, err := BuildRequest(TypeWirePayment, map[string]any{
		"amount":       1000,
		"description":  "rent",
		"counterparty": wireCounterpartyAttr(),
		"secCode":      "PPD",
	}, accountRel())
	expectValidationError(t, err, "attributes")
}

func TestBuildRequest_RelationshipNotAllowed(t *testing.T) {
	r := accountRel()
	r["transaction"] = Relationship{Type: RefTypeTransaction, ID: "txn_7"}
	_, err := BuildRequest(TypeWirePayment, map[string]any{
		"amount":       1000,
		"description":  "rent",
		"counterparty": wireCounterpartyAttr(),
	}, r)
	expectValidationError(t, err, "relationships.transaction")
}

func TestBuildRequest_MissingAccount(t *testing.T) {
	_, err := BuildRequest(TypeWirePayment, map[string]any{
		"amount":       1000,
		"description":  "rent",
		"counterparty": wireCounterpartyAttr(),
	}, nil)
	expectValidationError(t, err, "relationships.account.id")
}

func TestBuildRequest_VerifiedTokenRequired(t *testing.T) {
	// An explicitly empty token still selects the verified shape, then
	// fails its own validation.
	_, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":              500,
		"direction":           "Debit",
		"description":         "Gym dues",
		"plaidProcessorToken": "",
	}, accountRel())
	expectValidationError(t, err, "attributes.plaidProcessorToken")
}

func TestCreateRequest_MarshalShape(t *testing.T) {
	req, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":                    500,
		"direction":                 "Debit",
		"description":               "Gym dues",
		"plaidProcessorToken":       "processor-tok-1",
		"idempotencyKey":            "3a1bf9f8",
		"verifyCounterpartyBalance": true,
	}, accountRel())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if m["type"] != TypeACHPayment {
		t.Errorf("expected wire discriminator achPayment, got %v", m["type"])
	}
	a := m["attributes"].(map[string]any)
	if a["plaidProcessorToken"] != "processor-tok-1" {
		t.Errorf("expected token in body, got %v", a["plaidProcessorToken"])
	}
	// The idempotency key is forwarded verbatim.
	if a["idempotencyKey"] != "3a1bf9f8" {
		t.Errorf("expected idempotency key passthrough, got %v", a["idempotencyKey"])
	}
	if a["verifyCounterpartyBalance"] != true {
		t.Errorf("expected verifyCounterpartyBalance true, got %v", a["verifyCounterpartyBalance"])
	}
	if _, present := a["counterparty"]; present {
		t.Error("verified request body must not carry an inline counterparty")
	}
}
