// Package verification implements the one-time code gate in front of the full
// report.
package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is the fixed number of digits in a verification code.
const CodeLength = 6

// Gate tracks the most recently issued code for one interactive session.
// Codes never expire on their own: the session's lifetime is the code's
// lifetime, and issuing a new code supersedes the old one.
type Gate struct {
	email    string
	code     string
	verified bool
}

// IssueCode generates a fresh code bound to the given email and returns it.
// Sending the code to the user is the caller's concern; a failed send still
// leaves the code issued.
func (g *Gate) IssueCode(email string) string {
	g.email = email
	g.code = randomCode()
	g.verified = false
	return g.code
}

// CheckCode compares the submitted string against the most recently issued
// code. An exact match flips the gate to verified.
func (g *Gate) CheckCode(submitted string) bool {
	if g.code == "" || submitted != g.code {
		return false
	}
	g.verified = true
	return true
}

// Verified reports whether the gate has been passed.
func (g *Gate) Verified() bool {
	return g.verified
}

// Email returns the address the current code is bound to.
func (g *Gate) Email() string {
	return g.email
}

// randomCode returns CodeLength uniformly random decimal digits.
func randomCode() string {
	digits := make([]byte, CodeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand failing means the platform RNG is broken; there is
			// no sensible degraded mode for issuing credentials.
			panic(fmt.Sprintf("verification: random source unavailable: %v", err))
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}
