package service

// PhoneNormalizer turns user-entered phone numbers into a canonical form.
type PhoneNormalizer interface {
	// Normalize returns the E.164 form of raw, or an error if it is not a valid number.
	Normalize(raw string) (string, error)
}
