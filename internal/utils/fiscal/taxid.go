package fiscal

import (
	"fmt"
	"unicode"

	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
)

// ErrInvalidTaxID is returned when a CPF/CNPJ fails length or check-digit validation.
var ErrInvalidTaxID = fmt.Errorf("invalid tax ID")

// cnpjWeights are the cyclic modulo-11 weights for the first CNPJ check digit.
// The second digit uses the same cycle shifted by one (starting at 6).
var cnpjWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// ValidateCPF checks an individual taxpayer ID (11 digits after stripping
// formatting). Known-invalid sequences of a single repeated digit are rejected
// regardless of their check digits.
func ValidateCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 || allSameDigit(digits) {
		return false
	}
	return cpfCheckDigit(digits, 9) == int(digits[9]-'0') &&
		cpfCheckDigit(digits, 10) == int(digits[10]-'0')
}

// cpfCheckDigit computes the modulo-11 check digit over the first n digits,
// with descending weights n+1..2.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	remainder := 11 - (sum % 11)
	if remainder > 9 {
		return 0
	}
	return remainder
}

// ValidateCNPJ checks an organization taxpayer ID (14 digits after stripping
// formatting) using the cyclic 5..2/9..2 and 6..2/9..2 weight sequences.
func ValidateCNPJ(cnpj string) bool {
	digits := OnlyDigits(cnpj)
	if len(digits) != 14 || allSameDigit(digits) {
		return false
	}
	return cnpjCheckDigit(digits, 12) == int(digits[12]-'0') &&
		cnpjCheckDigit(digits, 13) == int(digits[13]-'0')
}

// cnpjCheckDigit computes the modulo-11 check digit over the first n digits
// (n is 12 for the first digit, 13 for the second).
func cnpjCheckDigit(digits string, n int) int {
	offset := 13 - n
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * cnpjWeights[i+offset]
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// ValidateTaxID is the authoritative server-side check applied before any
// person record is persisted. An empty tax ID is accepted; uniqueness of
// present IDs is enforced by the storage layer.
func ValidateTaxID(taxID string, personType domain.PersonType) error {
	if OnlyDigits(taxID) == "" {
		return nil
	}
	switch personType {
	case domain.Individual:
		if !ValidateCPF(taxID) {
			return fmt.Errorf("%w: CPF %q fails check-digit validation", ErrInvalidTaxID, taxID)
		}
	case domain.Organization:
		if !ValidateCNPJ(taxID) {
			return fmt.Errorf("%w: CNPJ %q fails check-digit validation", ErrInvalidTaxID, taxID)
		}
	default:
		return fmt.Errorf("%w: unknown person type %q", ErrInvalidTaxID, personType)
	}
	return nil
}
