package model

// Reminder is a medicine reminder. Only Active may change after creation.
type Reminder struct {
	Base
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"`
	PhoneNumber  string `json:"phoneNumber"`
	Active       bool   `json:"active"`
	DurationType string `json:"durationType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// CreateReminderRequest carries the raw form fields of the reminder form.
// Dosage falls back to "As prescribed" and StartDate to today when blank.
type CreateReminderRequest struct {
	MedicineName string `json:"medicineName"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"`
	PhoneNumber  string `json:"phoneNumber"`
	DurationType string `json:"durationType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// ReminderView is a Reminder plus its display-derived fields.
type ReminderView struct {
	Reminder
	DisplayTime  string `json:"displayTime"`
	DurationText string `json:"durationText"`
}
