// Package companytype defines the configurable company-type labels shown on
// competitors. Like saved searches, the list is persisted as one JSON blob
// and the struct is its wire format.
package companytype

import "fmt"

// CompanyType is one configurable label (e.g. "Direct", "Adjacent").
type CompanyType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// Validate checks a company type before it is stored.
func (t CompanyType) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("company type ID is required")
	}
	if t.Label == "" {
		return fmt.Errorf("company type label is required")
	}
	if len(t.Label) > 64 {
		return fmt.Errorf("company type label too long (max 64)")
	}
	return nil
}
