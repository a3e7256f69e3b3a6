package models

// CipherText is the opaque encrypted form of a secret as produced by the
// transit engine (e.g. "vault:v1:...").
type CipherText string

func (c CipherText) String() string {
	return string(c)
}
