package models

// Employee represents a single employee record.
// ID is assigned by the store; a zero ID means the record has not been persisted yet.
// ID and Age are bounded by the INTEGER columns they are stored in.
type Employee struct {
	ID          int           `json:"id"          binding:"min=0,max=2147483647"` // Unique identifier, generated by the store
	FirstName   string        `json:"firstName"   binding:"required"`             // First name, must not be empty
	LastName    string        `json:"lastName"`                                   // Last name of the employee
	Age         int           `json:"age"         binding:"min=0,max=2147483647"` // Age in years
	Designation string        `json:"designation"`                                // Job title, e.g. "Software Engineer"
	PhoneNumber string        `json:"phoneNumber"`                                // Contact phone number
	JoinedOn    Date          `json:"joinedOn"`                                   // Date the employee joined
	Address     string        `json:"address"`                                    // Postal address
	DateOfBirth Date          `json:"dateOfBirth"`                                // Date of birth
	CreatedAt   LocalDateTime `json:"createdAt"`                                  // Set once when the record is created
	UpdatedAt   LocalDateTime `json:"updatedAt"`                                  // Set on every write
}
