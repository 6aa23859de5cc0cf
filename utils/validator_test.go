package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safarsaathi/models"
)

func validInput() models.LeadInput {
	return models.LeadInput{
		ParentName:   "Anjali Patel",
		ChildGrade:   "Class 5",
		SchoolName:   "Sunrise Public School",
		City:         "Pune",
		MobileNumber: "9876543210",
		Email:        "anjali@example.com",
	}
}

func TestValidateLead(t *testing.T) {
	t.Run("Valid payload", func(t *testing.T) {
		in := validInput()
		assert.Nil(t, ValidateLead(&in))
	})

	t.Run("Optional fields may be empty", func(t *testing.T) {
		in := validInput()
		in.SchoolName = ""
		in.Email = ""
		assert.Nil(t, ValidateLead(&in))
	})

	t.Run("Short mobile number", func(t *testing.T) {
		in := validInput()
		in.MobileNumber = "98765"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "mobileNumber")
		assert.Equal(t, "must be exactly 10 digits", verr.Fields["mobileNumber"])
	})

	t.Run("Mobile number with letters", func(t *testing.T) {
		in := validInput()
		in.MobileNumber = "98765abc10"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "mobileNumber")
	})

	t.Run("Digits in parent name", func(t *testing.T) {
		in := validInput()
		in.ParentName = "Anjali 2"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "parentName")
	})

	t.Run("Symbols in city", func(t *testing.T) {
		in := validInput()
		in.City = "Pune!"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "city")
	})

	t.Run("Digits in optional school name", func(t *testing.T) {
		in := validInput()
		in.SchoolName = "School #42"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "schoolName")
	})

	t.Run("Unknown grade", func(t *testing.T) {
		in := validInput()
		in.ChildGrade = "Class 13"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "childGrade")
	})

	t.Run("Missing required fields", func(t *testing.T) {
		verr := ValidateLead(&models.LeadInput{})
		assert.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "parentName")
		assert.Contains(t, verr.Fields, "childGrade")
		assert.Contains(t, verr.Fields, "city")
		assert.Contains(t, verr.Fields, "mobileNumber")
		assert.NotContains(t, verr.Fields, "schoolName")
		assert.NotContains(t, verr.Fields, "email")
	})

	t.Run("Malformed email", func(t *testing.T) {
		in := validInput()
		in.Email = "not-an-email"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	})

	t.Run("Errors collected across fields", func(t *testing.T) {
		in := validInput()
		in.ParentName = "Anjali-2"
		in.MobileNumber = "12"
		verr := ValidateLead(&in)
		assert.NotNil(t, verr)
		assert.Len(t, verr.Fields, 2)
		assert.Contains(t, verr.Error(), "mobileNumber")
	})
}
