package entity

import (
	"time"

	"github.com/google/uuid"
)

// SectionType controls how a section is rendered in the storefront.
type SectionType string

const (
	SectionTypeGrid   SectionType = "grid"
	SectionTypeList   SectionType = "list"
	SectionTypeSlider SectionType = "slider"
)

// IsValid checks if the SectionType is a valid value.
func (t SectionType) IsValid() bool {
	switch t {
	case SectionTypeGrid, SectionTypeList, SectionTypeSlider:
		return true
	default:
		return false
	}
}

// SectionForm governs how a customer customizes a selection within the
// section: no customization, a single choice, a counter, or free text.
type SectionForm string

const (
	SectionFormNotApplicable      SectionForm = "not_applicable"
	SectionFormRadio              SectionForm = "radio"
	SectionFormIncrementDecrement SectionForm = "increment_decrement"
	SectionFormTextbox            SectionForm = "textbox"
)

// IsValid checks if the SectionForm is a valid value.
func (f SectionForm) IsValid() bool {
	switch f {
	case SectionFormNotApplicable, SectionFormRadio, SectionFormIncrementDecrement, SectionFormTextbox:
		return true
	default:
		return false
	}
}

// Section groups products for display within a store. Position orders
// sections on the storefront; MinProducts/MaxProducts bound how many
// selections the form mode accepts.
type Section struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	Title           string
	Type            SectionType
	Position        int
	MinProducts     int
	MaxProducts     int
	IsActive        bool
	IsRequired      bool
	IsHighlighted   bool
	Form            SectionForm
	TextboxHelpText string
	Products        []*Product
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
