package utils

// Error is a constant error type; declare sentinels with const
type Error string

func (e Error) Error() string {
	return string(e)
}

// Must returns v, or panics if err is not nil
// Use only where err cannot occur for valid, compile-time inputs
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
