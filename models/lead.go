package models

import (
	"strings"
	"time"
)

// GradeBands is the fixed set of grade values accepted on the signup form.
var GradeBands = []string{
	"Nursery",
	"LKG",
	"UKG",
	"Class 1",
	"Class 2",
	"Class 3",
	"Class 4",
	"Class 5",
	"Class 6",
	"Class 7",
	"Class 8",
	"Class 9",
	"Class 10",
	"Class 11",
	"Class 12",
}

// IsValidGrade reports whether grade is one of GradeBands.
func IsValidGrade(grade string) bool {
	for _, g := range GradeBands {
		if g == grade {
			return true
		}
	}
	return false
}

// Lead is a prospective customer captured from the landing page form.
// ID and CreatedAt are assigned by the store on insert and never set by
// callers. Rows are insert-only; there is no edit or delete flow.
type Lead struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ParentName   string    `gorm:"not null;size:100" json:"parentName"`
	ChildGrade   string    `gorm:"not null;size:20" json:"childGrade"`
	SchoolName   *string   `gorm:"size:200" json:"schoolName,omitempty"`
	City         string    `gorm:"not null;size:100" json:"city"`
	MobileNumber string    `gorm:"not null;size:10" json:"mobileNumber"`
	Email        *string   `gorm:"size:254" json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LeadInput is the submission payload from the form. Optional fields may
// arrive as empty strings; ToLead normalizes those to absent.
type LeadInput struct {
	ParentName   string `json:"parentName" validate:"required,alphaspace,max=100"`
	ChildGrade   string `json:"childGrade" validate:"required,gradeband"`
	SchoolName   string `json:"schoolName" validate:"omitempty,alphaspace,max=200"`
	City         string `json:"city" validate:"required,alphaspace,max=100"`
	MobileNumber string `json:"mobileNumber" validate:"required,mobile10"`
	Email        string `json:"email" validate:"omitempty,max=254"`
}

// ToLead maps the validated input onto a Lead ready for insertion. Values
// are trimmed and empty optional strings become nil so the store writes
// NULL instead of "".
func (in *LeadInput) ToLead() *Lead {
	lead := &Lead{
		ParentName:   strings.TrimSpace(in.ParentName),
		ChildGrade:   strings.TrimSpace(in.ChildGrade),
		City:         strings.TrimSpace(in.City),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
	}
	if school := strings.TrimSpace(in.SchoolName); school != "" {
		lead.SchoolName = &school
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		lead.Email = &email
	}
	return lead
}
