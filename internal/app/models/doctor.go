package models

import (
	"fmt"
	"time"
)

type Doctor struct {
	ID             int64     `json:"id"`
	Identification string    `json:"identification"`
	GivenName      string    `json:"given_name"`
	FamilyName     string    `json:"family_name"`
	Specialty      string    `json:"specialty"`
	Office         string    `json:"office"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DoctorPatch carries the fields of a partial update; nil means "keep".
type DoctorPatch struct {
	Identification *string
	GivenName      *string
	FamilyName     *string
	Specialty      *string
	Office         *string
	Email          *string
}

func (d Doctor) FullName() string {
	return fmt.Sprintf("%s %s", d.GivenName, d.FamilyName)
}

// Apply returns a copy of d with the patch merged in. d itself is left as is.
func (d Doctor) Apply(patch DoctorPatch) Doctor {
	merged := d
	if patch.Identification != nil {
		merged.Identification = *patch.Identification
	}
	if patch.GivenName != nil {
		merged.GivenName = *patch.GivenName
	}
	if patch.FamilyName != nil {
		merged.FamilyName = *patch.FamilyName
	}
	if patch.Specialty != nil {
		merged.Specialty = *patch.Specialty
	}
	if patch.Office != nil {
		merged.Office = *patch.Office
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	return merged
}
