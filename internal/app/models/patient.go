package models

import (
	"fmt"
	"time"
)

type Patient struct {
	ID             int64     `json:"id"`
	Identification string    `json:"identification"`
	GivenName      string    `json:"given_name"`
	FamilyName     string    `json:"family_name"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PatientPatch struct {
	Identification *string
	GivenName      *string
	FamilyName     *string
	Phone          *string
}

func (p Patient) FullName() string {
	return fmt.Sprintf("%s %s", p.GivenName, p.FamilyName)
}

func (p Patient) Apply(patch PatientPatch) Patient {
	merged := p
	if patch.Identification != nil {
		merged.Identification = *patch.Identification
	}
	if patch.GivenName != nil {
		merged.GivenName = *patch.GivenName
	}
	if patch.FamilyName != nil {
		merged.FamilyName = *patch.FamilyName
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	return merged
}
