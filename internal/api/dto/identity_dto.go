package dto

// VerifyIdentityRequest is the POST /api/verify-identity body. The
// check is a stub: presence of all three fields is the whole test.
type VerifyIdentityRequest struct {
	AccountNumber string `json:"accountNumber"`
	Email         string `json:"email"`
	PIN           string `json:"pin"`
}
