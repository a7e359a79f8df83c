package requests

type CreateDoctor struct {
	Identification string `json:"identification" validate:"required,max=32"`
	GivenName      string `json:"given_name" validate:"required,max=100"`
	FamilyName     string `json:"family_name" validate:"required,max=100"`
	Specialty      string `json:"specialty" validate:"required,specialty"`
	Office         string `json:"office" validate:"required,office"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
}

type UpdateDoctor struct {
	Identification *string `json:"identification" validate:"omitempty,min=1,max=32"`
	GivenName      *string `json:"given_name" validate:"omitempty,min=1,max=100"`
	FamilyName     *string `json:"family_name" validate:"omitempty,min=1,max=100"`
	Specialty      *string `json:"specialty" validate:"omitempty,specialty"`
	Office         *string `json:"office" validate:"omitempty,office"`
	Email          *string `json:"email" validate:"omitempty,email,max=255"`
}
