package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	got, err := CalculateBMI(180, 80)
	if err != nil {
		t.Fatalf("CalculateBMI: %v", err)
	}
	if math.Abs(got-24.69) > 0.01 {
		t.Errorf("BMI = %v, want ~24.69", got)
	}
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	cases := []struct {
		name           string
		height, weight float64
	}{
		{"zero height", 0, 80},
		{"zero weight", 180, 0},
		{"negative weight", 180, -5},
		{"height too large", 300, 80},
		{"weight too small", 180, 5},
	}
	for _, tc := range cases {
		if _, err := CalculateBMI(tc.height, tc.weight); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25, "Overweight"},
		{29.9, "Overweight"},
		{30, "Obesity"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestBMIStatus(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17, "underweight"},
		{22, "normal"},
		{27, "overweight"},
		{33, "obese"},
	}
	for _, tc := range cases {
		if got := BMIStatus(tc.bmi); got != tc.want {
			t.Errorf("BMIStatus(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
