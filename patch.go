package payments

import "fmt"

// PatchPaymentRequest updates the tags of an existing payment. Only ACH,
// book and received ACH payments accept patches; wire and bill payments are
// immutable once created.
type PatchPaymentRequest struct {
	Type       string                 `json:"type"`
	Attributes PatchPaymentAttributes `json:"attributes"`
}

type PatchPaymentAttributes struct {
	Tags Tags `json:"tags"`
}

// ApplyPatch returns a copy of the payment with its tags replaced by the
// patch's tags; every other field is carried over unchanged and the input
// payment is not modified. The patch discriminator must name a patchable
// variant and match the payment's own.
func ApplyPatch(p Payment, patch PatchPaymentRequest) (Payment, error) {
	rule, ok := resourceRules[patch.Type]
	if !ok {
		return nil, &ValidationError{Field: "type", Constraint: fmt.Sprintf("unknown payment type %q", patch.Type)}
	}
	if !rule.patchable {
		return nil, &ValidationError{Field: "type", Constraint: fmt.Sprintf("%s payments cannot be patched", patch.Type)}
	}
	if patch.Type != p.Type() {
		return nil, &ValidationError{Field: "type", Constraint: fmt.Sprintf("patch targets %s but payment is %s", patch.Type, p.Type())}
	}

	// Full replace, not a key-wise merge.
	tags := patch.Attributes.Tags.Clone()

	switch v := p.(type) {
	case *ACHPayment:
		cp := *v
		cp.Attributes.Tags = tags
		return &cp, nil
	case *BookPayment:
		cp := *v
		cp.Attributes.Tags = tags
		return &cp, nil
	case *ACHReceivedPayment:
		cp := *v
		cp.Attributes.Tags = tags
		return &cp, nil
	default:
		return nil, &ValidationError{Field: "type", Constraint: fmt.Sprintf("%s payments cannot be patched", p.Type())}
	}
}
