package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type petInput struct {
	Name   string  `json:"name" validate:"required,max=50"`
	Type   string  `json:"type" validate:"pet_type"`
	Gender string  `json:"gender" validate:"pet_gender"`
	Weight float64 `json:"weight" validate:"gt=0"`
	Date   string  `json:"date" validate:"omitempty,date"`
}

func TestValidateOK(t *testing.T) {
	errs := Validate(petInput{Name: "Mochi", Type: "cat", Gender: "female", Weight: 4.2, Date: "2025-01-10"})
	assert.Nil(t, errs)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	errs := Validate(petInput{Type: "dog", Gender: "x", Weight: 0, Date: "10/01/2025"})

	assert.Equal(t, "field is required", errs["name"])
	assert.Contains(t, errs["type"], "cat or other")
	assert.Contains(t, errs["gender"], "male, female or unknown")
	assert.Contains(t, errs["weight"], "greater than 0")
	assert.Contains(t, errs["date"], "YYYY-MM-DD")
}

func TestSummaryIsSorted(t *testing.T) {
	s := Summary(map[string]string{"weight": "bad", "name": "missing"})
	assert.Equal(t, "name: missing; weight: bad", s)
}
