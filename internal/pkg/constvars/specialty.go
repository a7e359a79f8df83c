package constvars

const (
	SpecialtyGeneralMedicine  = "Medicina general"
	SpecialtyCardiology       = "Cardiología"
	SpecialtyInternalMedicine = "Medicina interna"
	SpecialtyDermatology      = "Dermatología"
	SpecialtyRehabilitation   = "Rehabilitación física"
	SpecialtyPsychology       = "Psicología"
	SpecialtyDentistry        = "Odontología"
	SpecialtyRadiology        = "Radiología"
	SpecialtyPediatrics       = "Pediatría"
	SpecialtyOrthopedics      = "Ortopedia"
)

var Specialties = map[string]bool{
	SpecialtyGeneralMedicine:  true,
	SpecialtyCardiology:       true,
	SpecialtyInternalMedicine: true,
	SpecialtyDermatology:      true,
	SpecialtyRehabilitation:   true,
	SpecialtyPsychology:       true,
	SpecialtyDentistry:        true,
	SpecialtyRadiology:        true,
	SpecialtyPediatrics:       true,
	SpecialtyOrthopedics:      true,
}
