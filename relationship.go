package payments

import "fmt"

// Relationship is a typed reference to a resource owned elsewhere. The model
// carries the reference verbatim; it never dereferences or fetches it.
type Relationship struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Resource types accepted in relationship references.
const (
	RefTypeDepositAccount = "depositAccount"
	RefTypeCounterparty   = "counterparty"
	RefTypeCustomer       = "customer"
	RefTypeTransaction    = "transaction"
)

// check verifies the reference is fully populated and, when refType is
// non-empty, that it points at the expected resource type.
func (r Relationship) check(field, refType string) *fieldFault {
	if r.ID == "" {
		return &fieldFault{field + ".id", "is required"}
	}
	if r.Type == "" {
		return &fieldFault{field + ".type", "is required"}
	}
	if refType != "" && r.Type != refType {
		return &fieldFault{field + ".type", fmt.Sprintf("must reference a %s, got %q", refType, r.Type)}
	}
	return nil
}
