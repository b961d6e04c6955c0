package domain

// AccountStatus enumerates customer account states.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "Active"
	AccountStatusSuspended AccountStatus = "Suspended"
	AccountStatusInactive  AccountStatus = "Inactive"
)

// Customer is read-only reference data for the console.
type Customer struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Plan        string
	DeviceCount int
	Status      AccountStatus
	// SecurityAnswers holds the expected answer for each entry of the
	// fixed security-question list, indexed by question position.
	SecurityAnswers []string
}
