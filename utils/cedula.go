package utils

import (
	"errors"
	"regexp"
	"strconv"
)

var cedulaDigits = regexp.MustCompile(`^\d{10}$`)

// ValidateCedula checks an Ecuadorian national id: 10 digits, province
// code 01-24, third digit below 6, and a valid check digit.
func ValidateCedula(cedula string) error {
	if !cedulaDigits.MatchString(cedula) {
		return errors.New("national id must be exactly 10 digits")
	}

	province, _ := strconv.Atoi(cedula[0:2])
	if province < 1 || province > 24 {
		return errors.New("invalid province code in national id")
	}

	third := int(cedula[2] - '0')
	if third > 5 {
		return errors.New("invalid third digit in national id")
	}

	total := 0
	for i := 0; i < 9; i++ {
		n := int(cedula[i] - '0')
		if (i+1)%2 != 0 { // odd positions double
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		total += n
	}
	check := 0
	if mod := total % 10; mod != 0 {
		check = 10 - mod
	}

	if check != int(cedula[9]-'0') {
		return errors.New("invalid national id check digit")
	}
	return nil
}
