package payments

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

// PaymentModelSuite walks the full contract surface the way a client does:
// parse a snapshot, narrow it, patch it, marshal it back and re-parse.
type PaymentModelSuite struct {
	suite.Suite
	fixtures map[string]string
}

func (s *PaymentModelSuite) SetupSuite() {
	s.fixtures = map[string]string{
		TypeACHPayment:         validACHPayment,
		TypeBookPayment:        validBookPayment,
		TypeWirePayment:        validWirePayment,
		TypeBillPayment:        validBillPayment,
		TypeACHReceivedPayment: validACHReceivedPayment,
	}
}

func (s *PaymentModelSuite) TestEveryVariantRoundTrips() {
	for typ, doc := range s.fixtures {
		p, err := ParseResource([]byte(doc))
		s.NoError(err)
		s.Equal(typ, p.Type())

		body, err := json.Marshal(p)
		s.NoError(err)

		again, err := ParseResource(body)
		s.NoError(err)
		s.Equal(typ, again.Type())
	}
}

func (s *PaymentModelSuite) TestParseNarrowPatchFlow() {
	p, err := ParseResource([]byte(validACHPayment))
	s.Require().NoError(err)

	ach, err := Narrow[*ACHPayment](p)
	s.Require().NoError(err)
	s.Equal(int64(12500), ach.Attributes.Amount)
	s.Equal(StatusPending, ach.Attributes.Status)
	s.False(ach.Attributes.Status.Terminal())

	patched, err := ApplyPatch(p, PatchPaymentRequest{
		Type:       TypeACHPayment,
		Attributes: PatchPaymentAttributes{Tags: Tags{"team": "billing"}},
	})
	s.Require().NoError(err)

	body, err := json.Marshal(patched)
	s.Require().NoError(err)

	again, err := ParseResource(body)
	s.Require().NoError(err)
	achAgain, err := Narrow[*ACHPayment](again)
	s.Require().NoError(err)
	s.Equal(Tags{"team": "billing"}, achAgain.Attributes.Tags)
	s.Equal(ach.Attributes.Counterparty, achAgain.Attributes.Counterparty)
}

func (s *PaymentModelSuite) TestRequestBodiesCarryTheACHDiscriminator() {
	account := map[string]Relationship{
		"account": {Type: RefTypeDepositAccount, ID: "acc_1"},
	}

	inline, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":       500,
		"direction":    "Debit",
		"description":  "Gym dues",
		"counterparty": achCounterpartyAttr(),
	}, account)
	s.Require().NoError(err)

	linkedRels := map[string]Relationship{
		"account":      {Type: RefTypeDepositAccount, ID: "acc_1"},
		"counterparty": {Type: RefTypeCounterparty, ID: "cp_9"},
	}
	linked, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":      500,
		"direction":   "Debit",
		"description": "Gym dues",
	}, linkedRels)
	s.Require().NoError(err)

	verified, err := BuildRequest(TypeACHPayment, map[string]any{
		"amount":              500,
		"direction":           "Debit",
		"description":         "Gym dues",
		"plaidProcessorToken": "processor-tok-1",
	}, account)
	s.Require().NoError(err)

	for _, req := range []CreatePaymentRequest{inline, linked, verified} {
		s.Equal(TypeACHPayment, req.Type())
		body, err := json.Marshal(req)
		s.Require().NoError(err)
		var m map[string]any
		s.Require().NoError(json.Unmarshal(body, &m))
		s.Equal(TypeACHPayment, m["type"])
	}
}

func (s *PaymentModelSuite) TestImmutableVariantsRejectPatch() {
	for _, typ := range []string{TypeWirePayment, TypeBillPayment} {
		p, err := ParseResource([]byte(s.fixtures[typ]))
		s.Require().NoError(err)

		_, err = ApplyPatch(p, PatchPaymentRequest{
			Type:       typ,
			Attributes: PatchPaymentAttributes{Tags: Tags{"k": "v"}},
		})
		s.Error(err)
		s.IsType(&ValidationError{}, err)
	}
}

func TestPaymentModelSuite(t *testing.T) {
	suite.Run(t, new(PaymentModelSuite))
}
