// Package common holds small helpers shared across IqraNow client layers.
package common

// WipeByteArray overwrites the buffer with zeros. Used to scrub passwords
// from memory once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
