package payments

// Narrow downcasts a Payment to the concrete variant T by discriminator
// comparison. It inspects nothing beyond the type tag; a mismatch is
// reported as a *TypeMismatchError naming both discriminators.
func Narrow[T Payment](p Payment) (T, error) {
	if v, ok := p.(T); ok {
		return v, nil
	}
	var zero T
	return zero, &TypeMismatchError{Want: zero.Type(), Got: p.Type()}
}
