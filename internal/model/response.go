package model

// ApiResponse is the envelope for single-member and delete responses.
// Member is omitted for delete and error responses.
type ApiResponse struct {
	Message string  `json:"message"`
	Member  *Member `json:"member,omitempty"`
}
