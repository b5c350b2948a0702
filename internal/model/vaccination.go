package model

// Vaccination is a single administered-dose record.
type Vaccination struct {
	Base
	VaccineName      string `json:"vaccineName"`
	DoseNumber       string `json:"doseNumber"`
	DateAdministered string `json:"dateAdministered"`
	NextDueDate      string `json:"nextDueDate,omitempty"`
	AdministeredBy   string `json:"administeredBy"`
	Location         string `json:"location"`
	BatchNumber      string `json:"batchNumber,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

type CreateVaccinationRequest struct {
	VaccineName      string `json:"vaccineName"`
	DoseNumber       string `json:"doseNumber"`
	DateAdministered string `json:"dateAdministered"`
	NextDueDate      string `json:"nextDueDate"`
	AdministeredBy   string `json:"administeredBy"`
	Location         string `json:"location"`
	BatchNumber      string `json:"batchNumber"`
	Notes            string `json:"notes"`
}

// VaccinationView adds the due-date badges and display dates rendered on
// vaccination cards.
type VaccinationView struct {
	Vaccination
	DisplayDateAdministered string `json:"displayDateAdministered"`
	DisplayNextDueDate      string `json:"displayNextDueDate,omitempty"`
	Overdue                 bool   `json:"overdue"`
	Upcoming                bool   `json:"upcoming"`
}
