package utils

import "errors"

// BMI input bounds mirror the profile validation ranges: a stored profile can
// never hold values outside them, so anything else here is garbage input.
const (
	minHeightCm = 100.0
	maxHeightCm = 250.0
	minWeightKg = 20.0
	maxWeightKg = 300.0
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < minHeightCm || heightCm > maxHeightCm {
		return 0, errors.New("height out of range")
	}
	if weightKg < minWeightKg || weightKg > maxWeightKg {
		return 0, errors.New("weight out of range")
	}

	m := heightCm / 100.0
	return weightKg / (m * m), nil
}

// BMICategory buckets a BMI value per the WHO classification.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
