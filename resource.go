package payments

import "encoding/json"

// Payment type discriminators as they appear on the wire.
const (
	TypeACHPayment         = "achPayment"
	TypeBookPayment        = "bookPayment"
	TypeWirePayment        = "wirePayment"
	TypeBillPayment        = "billPayment"
	TypeACHReceivedPayment = "achReceivedPayment"
)

// Payment is the closed set of payment resource variants. Recover a concrete
// variant with Narrow or a type switch over the pointer types; Type is safe
// to call on a nil pointer of any variant.
type Payment interface {
	Type() string
	isPayment()
}

// --- ACH payment ---

// ACHPayment is an ACH credit or debit originated from a Wakala account.
type ACHPayment struct {
	ID            string                  `json:"id"`
	Attributes    ACHPaymentAttributes    `json:"attributes"`
	Relationships ACHPaymentRelationships `json:"relationships"`
}

type ACHPaymentAttributes struct {
	CreatedAt      DateTime     `json:"createdAt"`
	Status         Status       `json:"status"`
	Reason         string       `json:"reason,omitempty"`
	Direction      Direction    `json:"direction"`
	Description    string       `json:"description"`
	Amount         int64        `json:"amount"`
	Counterparty   Counterparty `json:"counterparty"`
	Addenda        string       `json:"addenda,omitempty"`
	SettlementDate *DateTime    `json:"settlementDate,omitempty"`
	Tags           Tags         `json:"tags,omitempty"`
}

type ACHPaymentRelationships struct {
	Account      Relationship   `json:"account"`
	Counterparty Relationship   `json:"counterparty"`
	Customer     *Relationship  `json:"customer,omitempty"`
	Customers    []Relationship `json:"customers,omitempty"`
	Transaction  *Relationship  `json:"transaction,omitempty"`
}

func (*ACHPayment) Type() string { return TypeACHPayment }
func (*ACHPayment) isPayment()   {}

func (p *ACHPayment) MarshalJSON() ([]byte, error) {
	type alias ACHPayment
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeACHPayment, (*alias)(p)})
}

// --- Book payment ---

// BookPayment moves funds between two accounts held at Wakala. Book
// transfers settle instantly and never leave the ledger.
type BookPayment struct {
	ID            string                   `json:"id"`
	Attributes    BookPaymentAttributes    `json:"attributes"`
	Relationships BookPaymentRelationships `json:"relationships"`
}

type BookPaymentAttributes struct {
	CreatedAt   DateTime  `json:"createdAt"`
	Status      Status    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Tags        Tags      `json:"tags,omitempty"`
}

type BookPaymentRelationships struct {
	Account              Relationship   `json:"account"`
	CounterpartyAccount  Relationship   `json:"counterpartyAccount"`
	CounterpartyCustomer Relationship   `json:"counterpartyCustomer"`
	Customer             *Relationship  `json:"customer,omitempty"`
	Customers            []Relationship `json:"customers,omitempty"`
	Transaction          *Relationship  `json:"transaction,omitempty"`
}

func (*BookPayment) Type() string { return TypeBookPayment }
func (*BookPayment) isPayment()   {}

func (p *BookPayment) MarshalJSON() ([]byte, error) {
	type alias BookPayment
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeBookPayment, (*alias)(p)})
}

// --- Wire payment ---

// WirePayment is a domestic wire originated from a Wakala account. The
// counterparty is carried inline; wires have no stored counterparty
// reference.
type WirePayment struct {
	ID            string                   `json:"id"`
	Attributes    WirePaymentAttributes    `json:"attributes"`
	Relationships WirePaymentRelationships `json:"relationships"`
}

type WirePaymentAttributes struct {
	CreatedAt    DateTime         `json:"createdAt"`
	Status       Status           `json:"status"`
	Reason       string           `json:"reason,omitempty"`
	Direction    Direction        `json:"direction"`
	Description  string           `json:"description"`
	Amount       int64            `json:"amount"`
	Counterparty WireCounterparty `json:"counterparty"`
	Tags         Tags             `json:"tags,omitempty"`
}

type WirePaymentRelationships struct {
	Account     Relationship   `json:"account"`
	Customer    *Relationship  `json:"customer,omitempty"`
	Customers   []Relationship `json:"customers,omitempty"`
	Transaction *Relationship  `json:"transaction,omitempty"`
}

func (*WirePayment) Type() string { return TypeWirePayment }
func (*WirePayment) isPayment()   {}

func (p *WirePayment) MarshalJSON() ([]byte, error) {
	type alias WirePayment
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeWirePayment, (*alias)(p)})
}

// --- Bill payment ---

// BillPayment is a payment executed through the external bill-pay network.
// The network does not expose counterparty details, so the attribute set is
// narrower than the other outbound variants.
type BillPayment struct {
	ID            string                   `json:"id"`
	Attributes    BillPaymentAttributes    `json:"attributes"`
	Relationships BillPaymentRelationships `json:"relationships"`
}

type BillPaymentAttributes struct {
	CreatedAt   DateTime  `json:"createdAt"`
	Status      Status    `json:"status"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Tags        Tags      `json:"tags,omitempty"`
}

type BillPaymentRelationships struct {
	Account     Relationship   `json:"account"`
	Customer    *Relationship  `json:"customer,omitempty"`
	Customers   []Relationship `json:"customers,omitempty"`
	Transaction *Relationship  `json:"transaction,omitempty"`
}

func (*BillPayment) Type() string { return TypeBillPayment }
func (*BillPayment) isPayment()   {}

func (p *BillPayment) MarshalJSON() ([]byte, error) {
	type alias BillPayment
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeBillPayment, (*alias)(p)})
}

// --- ACH received payment ---

// ACHReceivedPayment is an inbound ACH entry addressed to a Wakala account.
// It follows its own lifecycle and may be advanced ahead of its completion
// date; WasAdvanced stays true once set, even after completion.
type ACHReceivedPayment struct {
	ID            string                          `json:"id"`
	Attributes    ACHReceivedPaymentAttributes    `json:"attributes"`
	Relationships ACHReceivedPaymentRelationships `json:"relationships"`
}

type ACHReceivedPaymentAttributes struct {
	CreatedAt                 DateTime       `json:"createdAt"`
	Status                    ReceivedStatus `json:"status"`
	WasAdvanced               bool           `json:"wasAdvanced"`
	Direction                 Direction      `json:"direction"`
	Description               string         `json:"description"`
	Amount                    int64          `json:"amount"`
	CompletionDate            DateTime       `json:"completionDate"`
	ReturnReason              string         `json:"returnReason,omitempty"`
	Addenda                   string         `json:"addenda,omitempty"`
	CompanyName               string         `json:"companyName"`
	CounterpartyRoutingNumber string         `json:"counterpartyRoutingNumber"`
	TraceNumber               string         `json:"traceNumber"`
	SECCode                   SECCode        `json:"secCode,omitempty"`
	Tags                      Tags           `json:"tags,omitempty"`
}

type ACHReceivedPaymentRelationships struct {
	Account                        Relationship   `json:"account"`
	Customer                       *Relationship  `json:"customer,omitempty"`
	Customers                      []Relationship `json:"customers,omitempty"`
	ReceivePaymentTransaction      *Relationship  `json:"receivePaymentTransaction,omitempty"`
	PaymentAdvanceTransaction      *Relationship  `json:"paymentAdvanceTransaction,omitempty"`
	RepayPaymentAdvanceTransaction *Relationship  `json:"repayPaymentAdvanceTransaction,omitempty"`
}

func (*ACHReceivedPayment) Type() string { return TypeACHReceivedPayment }
func (*ACHReceivedPayment) isPayment()   {}

func (p *ACHReceivedPayment) MarshalJSON() ([]byte, error) {
	type alias ACHReceivedPayment
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeACHReceivedPayment, (*alias)(p)})
}
