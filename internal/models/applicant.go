// internal/models/applicant.go
package models

// NumCSVColumns is the column count of the applicant CSV export:
// Application No, Applicant Name, Mobile No, Applied Programme, Campus,
// Interview Date, Interview Time, Interview Venue, Next Check-in Venue/Instructions.
const NumCSVColumns = 9

// StatusRegistered is the initial status every seeded record carries.
const StatusRegistered = "REGISTERED"

// ApplicantRecord is one row of the applicants table, in column order.
// Date and Time are nil when the source value did not parse.
type ApplicantRecord struct {
	ApplicationNumber string
	Name              string
	Phone             string
	Program           string
	Campus            string
	Date              *string // YYYY-MM-DD
	Time              *string // HH:MM:SS, 24-hour
	Venue             string  // stored in the location column
	Instructions      string
	Status            string
}
