package api

// must derives the fail-fast form of a safe result: an error becomes a
// panic carrying the same *errors.ApiError value, a success passes
// through unchanged. Every Must* method on every facade is exactly this
// adapter over its safe counterpart; none of them add logic of their own.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// mustUnit is must for operations with no payload (204-style responses).
func mustUnit(err error) {
	if err != nil {
		panic(err)
	}
}
