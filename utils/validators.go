package utils

import (
	"regexp"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	placaRegex      = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	alnumSpaceRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	cpfRegex        = regexp.MustCompile(`^\d{11}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPlaca checks the Mercosul plate pattern: LLLNLNN, uppercase.
func IsValidPlaca(placa string) bool {
	return placaRegex.MatchString(placa)
}

// IsAlnumSpace rejects any character outside letters, digits and spaces.
func IsAlnumSpace(s string) bool {
	return alnumSpaceRegex.MatchString(s)
}

// IsValidCPF requires exactly 11 digits, no separators.
func IsValidCPF(cpf string) bool {
	return cpfRegex.MatchString(cpf)
}
