package model

// Test is a single recommended test attached to an appointment. It is an
// embedded child, not a standalone record.
type Test struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Appointment is a doctor's appointment with an optional ordered list of
// recommended tests.
type Appointment struct {
	Base
	DoctorName string `json:"doctorName"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes,omitempty"`
	Tests      []Test `json:"tests"`
}

type CreateAppointmentRequest struct {
	DoctorName string   `json:"doctorName"`
	Specialty  string   `json:"specialty"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Notes      string   `json:"notes"`
	Tests      []string `json:"tests"`
}

// AppointmentView adds display formatting for the appointment card.
type AppointmentView struct {
	Appointment
	DisplayDate string `json:"displayDate"`
	DisplayTime string `json:"displayTime"`
}
