// Package shared provides small helpers used across the client, currently
// secure wiping of sensitive byte slices.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. This is used to remove passwords from memory after they have been
// handed to the API layer.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
