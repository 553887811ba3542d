package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeDigits = 6

// VerificationCodeGenerator produces the numeric codes sent in account
// verification emails.
type VerificationCodeGenerator struct{}

func NewVerificationCodeGenerator() *VerificationCodeGenerator {
	return &VerificationCodeGenerator{}
}

func (g *VerificationCodeGenerator) Generate() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
