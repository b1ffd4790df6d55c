package payments

// AccountType is the kind of bank account a counterparty holds.
type AccountType string

const (
	AccountTypeChecking AccountType = "Checking"
	AccountTypeSavings  AccountType = "Savings"
)

// SECCode is the Standard Entry Class code attached to an ACH entry.
type SECCode string

const (
	SECCodePPD SECCode = "PPD" // Prearranged Payment and Deposit
	SECCodeWEB SECCode = "WEB" // Internet-Initiated Entry
	SECCodeCCD SECCode = "CCD" // Corporate Credit or Debit
	SECCodeTEL SECCode = "TEL" // Telephone-Initiated Entry
)

// Valid reports whether c is a known SEC code.
func (c SECCode) Valid() bool {
	switch c {
	case SECCodePPD, SECCodeWEB, SECCodeCCD, SECCodeTEL:
		return true
	}
	return false
}

// Counterparty describes the external bank account on the other side of an
// ACH payment.
type Counterparty struct {
	RoutingNumber string      `json:"routingNumber"`
	AccountNumber string      `json:"accountNumber"`
	AccountType   AccountType `json:"accountType"`
	Name          string      `json:"name"`
}

func (c Counterparty) validate(field string) *fieldFault {
	if c.RoutingNumber == "" {
		return &fieldFault{field + ".routingNumber", "is required"}
	}
	if c.AccountNumber == "" {
		return &fieldFault{field + ".accountNumber", "is required"}
	}
	if c.Name == "" {
		return &fieldFault{field + ".name", "is required"}
	}
	switch c.AccountType {
	case AccountTypeChecking, AccountTypeSavings:
	default:
		return &fieldFault{field + ".accountType", `must be "Checking" or "Savings"`}
	}
	return nil
}

// WireCounterparty describes the receiving account of a wire transfer. It
// extends the ACH descriptor with the postal address Fedwire requires.
type WireCounterparty struct {
	RoutingNumber string      `json:"routingNumber"`
	AccountNumber string      `json:"accountNumber"`
	AccountType   AccountType `json:"accountType,omitempty"`
	Name          string      `json:"name"`
	Address       Address     `json:"address"`
}

func (c WireCounterparty) validate(field string) *fieldFault {
	if c.RoutingNumber == "" {
		return &fieldFault{field + ".routingNumber", "is required"}
	}
	if c.AccountNumber == "" {
		return &fieldFault{field + ".accountNumber", "is required"}
	}
	if c.Name == "" {
		return &fieldFault{field + ".name", "is required"}
	}
	if c.AccountType != "" && c.AccountType != AccountTypeChecking && c.AccountType != AccountTypeSavings {
		return &fieldFault{field + ".accountType", `must be "Checking" or "Savings"`}
	}
	return c.Address.validate(field + ".address")
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a Address) validate(field string) *fieldFault {
	if a.Street == "" {
		return &fieldFault{field + ".street", "is required"}
	}
	if a.City == "" {
		return &fieldFault{field + ".city", "is required"}
	}
	if a.PostalCode == "" {
		return &fieldFault{field + ".postalCode", "is required"}
	}
	if a.Country == "" {
		return &fieldFault{field + ".country", "is required"}
	}
	return nil
}
