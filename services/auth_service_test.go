package services

import (
	"errors"
	"testing"
	"time"

	"github.com/joaquincgp/FitFlow/models"
)

func TestValidateRegistration(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	birth := time.Date(1996, 1, 15, 0, 0, 0, 0, time.UTC)

	if err := validateRegistration("1710034065", models.SexMale, birth, now); err != nil {
		t.Errorf("valid registration rejected: %v", err)
	}

	cases := []struct {
		name       string
		nationalID string
		sex        models.Sex
		birthDate  time.Time
	}{
		{"bad national id", "1710034066", models.SexMale, birth},
		{"missing sex", "1710034065", "", birth},
		{"zero birth date", "1710034065", models.SexFemale, time.Time{}},
		{"future birth date", "1710034065", models.SexMale, now.AddDate(1, 0, 0)},
		{"birth date today", "1710034065", models.SexMale, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateRegistration(tc.nationalID, tc.sex, tc.birthDate, now); !errors.Is(err, ErrValidation) {
				t.Errorf("got err %v, want ErrValidation", err)
			}
		})
	}
}
