package requests

type CreatePatient struct {
	Identification string `json:"identification" validate:"required,max=32"`
	GivenName      string `json:"given_name" validate:"required,max=100"`
	FamilyName     string `json:"family_name" validate:"required,max=100"`
	Phone          string `json:"phone" validate:"omitempty,phone"`
}

type UpdatePatient struct {
	Identification *string `json:"identification" validate:"omitempty,min=1,max=32"`
	GivenName      *string `json:"given_name" validate:"omitempty,min=1,max=100"`
	FamilyName     *string `json:"family_name" validate:"omitempty,min=1,max=100"`
	Phone          *string `json:"phone" validate:"omitempty,phone"`
}
