package utils

import "testing"

func TestValidateCedula(t *testing.T) {
	if err := ValidateCedula("1710034065"); err != nil {
		t.Errorf("valid cedula rejected: %v", err)
	}
}

func TestValidateCedulaRejectsInvalid(t *testing.T) {
	cases := []struct {
		name   string
		cedula string
	}{
		{"too short", "12345"},
		{"non numeric", "17100340ab"},
		{"province zero", "0010034065"},
		{"province too high", "9910034065"},
		{"third digit above five", "1760034065"},
		{"bad check digit", "1710034066"},
	}
	for _, tc := range cases {
		if err := ValidateCedula(tc.cedula); err == nil {
			t.Errorf("%s: %q accepted", tc.name, tc.cedula)
		}
	}
}
