package payments

// Tags is an open key-value mapping attached to a payment. The model treats
// tag contents as opaque; the backend propagates them to the transactions a
// payment produces.
type Tags map[string]string

// Clone returns an independent copy. A nil receiver stays nil.
func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
