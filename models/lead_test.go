package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidGrade(t *testing.T) {
	assert.True(t, IsValidGrade("Class 5"))
	assert.True(t, IsValidGrade("Nursery"))
	assert.False(t, IsValidGrade("Class 13"))
	assert.False(t, IsValidGrade("class 5"))
	assert.False(t, IsValidGrade(""))
}

func TestLeadInputToLead(t *testing.T) {
	t.Run("Empty optionals become absent", func(t *testing.T) {
		in := LeadInput{
			ParentName:   "Anjali Patel",
			ChildGrade:   "Class 5",
			City:         "Pune",
			MobileNumber: "9876543210",
			SchoolName:   "",
			Email:        "",
		}
		lead := in.ToLead()
		assert.Nil(t, lead.SchoolName)
		assert.Nil(t, lead.Email)
		assert.Empty(t, lead.ID)
		assert.True(t, lead.CreatedAt.IsZero())
	})

	t.Run("Whitespace-only optionals become absent", func(t *testing.T) {
		in := LeadInput{
			ParentName:   "Anjali Patel",
			ChildGrade:   "Class 5",
			City:         "Pune",
			MobileNumber: "9876543210",
			SchoolName:   "   ",
			Email:        " ",
		}
		lead := in.ToLead()
		assert.Nil(t, lead.SchoolName)
		assert.Nil(t, lead.Email)
	})

	t.Run("Values are trimmed", func(t *testing.T) {
		in := LeadInput{
			ParentName:   "  Anjali Patel ",
			ChildGrade:   "Class 5",
			City:         " Pune",
			MobileNumber: "9876543210 ",
			SchoolName:   " Sunrise Public School ",
			Email:        " anjali@example.com ",
		}
		lead := in.ToLead()
		assert.Equal(t, "Anjali Patel", lead.ParentName)
		assert.Equal(t, "Pune", lead.City)
		assert.Equal(t, "9876543210", lead.MobileNumber)
		if assert.NotNil(t, lead.SchoolName) {
			assert.Equal(t, "Sunrise Public School", *lead.SchoolName)
		}
		if assert.NotNil(t, lead.Email) {
			assert.Equal(t, "anjali@example.com", *lead.Email)
		}
	})
}
