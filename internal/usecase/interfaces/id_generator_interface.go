package interfaces

// IIDGenerator produces transaction and attempt ids. Injected so the state
// machine stays deterministic under test instead of reading ambient randomness.
type IIDGenerator interface {
	// TransactionID returns a new id with the given rail/flow prefix,
	// e.g. "CC", "ALI", "WX", "3DS".
	TransactionID(prefix string) string
	// AttemptID returns a new opaque checkout-attempt id.
	AttemptID() string
}
