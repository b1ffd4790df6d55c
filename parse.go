package payments

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// resourceEnvelope is the wire shape shared by every payment resource.
type resourceEnvelope struct {
	Type          string          `json:"type"`
	ID            string          `json:"id"`
	Attributes    json.RawMessage `json:"attributes"`
	Relationships json.RawMessage `json:"relationships"`
}

// ParseResource decodes a payment resource returned by the payments API and
// narrows it to its concrete variant. The type discriminator selects a rule
// set; an unknown discriminator, a missing required field, a wrong primitive
// kind, a violated length ceiling, a field the variant does not carry, or
// both customer and customers set at once are all reported as a *SchemaError
// naming the offending field.
func ParseResource(data []byte) (Payment, error) {
	var env resourceEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &SchemaError{Constraint: fmt.Sprintf("invalid resource JSON: %v", err)}
	}
	if env.Type == "" {
		return nil, &SchemaError{Field: "type", Constraint: "is required"}
	}
	rule, ok := resourceRules[env.Type]
	if !ok {
		return nil, &SchemaError{Field: "type", Constraint: fmt.Sprintf("unknown payment type %q", env.Type)}
	}
	if env.ID == "" {
		return nil, &SchemaError{Field: "id", Constraint: "is required"}
	}
	if err := checkAttributes(env.Attributes, rule.attrs); err != nil {
		return nil, err
	}
	if err := checkRelationships(env.Relationships, rule.rels); err != nil {
		return nil, err
	}
	return rule.decode(env)
}

func checkAttributes(raw json.RawMessage, rules map[string]attrRule) error {
	if len(raw) == 0 {
		return &SchemaError{Field: "attributes", Constraint: "is required"}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return &SchemaError{Field: "attributes", Constraint: "must be an object"}
	}
	for name, r := range rules {
		v, ok := fields[name]
		if !ok || isNull(v) {
			if r.required {
				return &SchemaError{Field: "attributes." + name, Constraint: "is required"}
			}
			continue
		}
		if err := checkAttr("attributes."+name, v, r); err != nil {
			return err
		}
	}
	// Fields not listed for the variant must be absent, not merely null.
	for name := range fields {
		if _, ok := rules[name]; !ok {
			return &SchemaError{Field: "attributes." + name, Constraint: "is not allowed for this payment type"}
		}
	}
	return nil
}

func checkAttr(field string, raw json.RawMessage, r attrRule) error {
	switch r.kind {
	case kindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return &SchemaError{Field: field, Constraint: "must be a string"}
		}
		// Ceilings count characters, not bytes.
		if n := utf8.RuneCountInString(s); r.maxLen > 0 && n > r.maxLen {
			return &SchemaError{Field: field, Constraint: fmt.Sprintf("must be at most %d characters, got %d", r.maxLen, n)}
		}
		if len(r.oneOf) > 0 && !slices.Contains(r.oneOf, s) {
			return &SchemaError{Field: field, Constraint: "must be one of " + strings.Join(r.oneOf, ", ")}
		}
	case kindPosInt:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return &SchemaError{Field: field, Constraint: "must be an integer"}
		}
		if n <= 0 {
			return &SchemaError{Field: field, Constraint: "must be a positive integer"}
		}
	case kindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return &SchemaError{Field: field, Constraint: "must be a boolean"}
		}
	case kindTimestamp:
		var d DateTime
		if err := json.Unmarshal(raw, &d); err != nil {
			return &SchemaError{Field: field, Constraint: "must be an RFC 3339 timestamp or yyyy-mm-dd date"}
		}
	case kindACHCounterparty:
		var c Counterparty
		if err := json.Unmarshal(raw, &c); err != nil {
			return &SchemaError{Field: field, Constraint: "must be a counterparty object"}
		}
		if f := c.validate(field); f != nil {
			return f.schema()
		}
	case kindWireCounterparty:
		var c WireCounterparty
		if err := json.Unmarshal(raw, &c); err != nil {
			return &SchemaError{Field: field, Constraint: "must be a wire counterparty object"}
		}
		if f := c.validate(field); f != nil {
			return f.schema()
		}
	case kindTags:
		var t Tags
		if err := json.Unmarshal(raw, &t); err != nil {
			return &SchemaError{Field: field, Constraint: "must be a flat string-to-string mapping"}
		}
	}
	return nil
}

func checkRelationships(raw json.RawMessage, rules map[string]relRule) error {
	var fields map[string]json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return &SchemaError{Field: "relationships", Constraint: "must be an object"}
		}
	}
	for name, r := range rules {
		v, ok := fields[name]
		if !ok || isNull(v) {
			if r.required {
				return &SchemaError{Field: "relationships." + name, Constraint: "is required"}
			}
			continue
		}
		if err := checkRel("relationships."+name, v, r); err != nil {
			return err
		}
	}
	for name := range fields {
		if _, ok := rules[name]; !ok {
			return &SchemaError{Field: "relationships." + name, Constraint: "is not allowed for this payment type"}
		}
	}
	// An account belongs either to one party or to several joint owners.
	if relPresent(fields, "customer") && relPresent(fields, "customers") {
		return &SchemaError{Field: "relationships.customers", Constraint: "cannot be combined with relationships.customer"}
	}
	return nil
}

func checkRel(field string, raw json.RawMessage, r relRule) error {
	if r.list {
		var refs []Relationship
		if err := json.Unmarshal(raw, &refs); err != nil {
			return &SchemaError{Field: field, Constraint: "must be a list of {type, id} references"}
		}
		if len(refs) == 0 {
			return &SchemaError{Field: field, Constraint: "must not be empty"}
		}
		for i, ref := range refs {
			if f := ref.check(fmt.Sprintf("%s[%d]", field, i), r.refType); f != nil {
				return f.schema()
			}
		}
		return nil
	}
	var ref Relationship
	if err := json.Unmarshal(raw, &ref); err != nil {
		return &SchemaError{Field: field, Constraint: "must be a {type, id} reference"}
	}
	if f := ref.check(field, r.refType); f != nil {
		return f.schema()
	}
	return nil
}

func relPresent(fields map[string]json.RawMessage, key string) bool {
	v, ok := fields[key]
	return ok && !isNull(v)
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// --- variant decoders ---

// decodeInto unmarshals the already-checked envelope sections into a
// variant's typed attribute and relationship structs.
func decodeInto(env resourceEnvelope, attrs, rels any) error {
	if err := json.Unmarshal(env.Attributes, attrs); err != nil {
		return &SchemaError{Field: "attributes", Constraint: err.Error()}
	}
	if err := json.Unmarshal(env.Relationships, rels); err != nil {
		return &SchemaError{Field: "relationships", Constraint: err.Error()}
	}
	return nil
}

func decodeACHPayment(env resourceEnvelope) (Payment, error) {
	p := &ACHPayment{ID: env.ID}
	if err := decodeInto(env, &p.Attributes, &p.Relationships); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeBookPayment(env resourceEnvelope) (Payment, error) {
	p := &BookPayment{ID: env.ID}
	if err := decodeInto(env, &p.Attributes, &p.Relationships); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeWirePayment(env resourceEnvelope) (Payment, error) {
	p := &WirePayment{ID: env.ID}
	if err := decodeInto(env, &p.Attributes, &p.Relationships); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeBillPayment(env resourceEnvelope) (Payment, error) {
	p := &BillPayment{ID: env.ID}
	if err := decodeInto(env, &p.Attributes, &p.Relationships); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeACHReceivedPayment(env resourceEnvelope) (Payment, error) {
	p := &ACHReceivedPayment{ID: env.ID}
	if err := decodeInto(env, &p.Attributes, &p.Relationships); err != nil {
		return nil, err
	}
	return p, nil
}
