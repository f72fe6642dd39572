package member

import (
	"errors"
	"net/http"

	sharedError "github.com/changhyeonkim/member-registry/internal/shared/error"
)

const (
	memberNotFound = "MEMBER_NOT_FOUND" // errInfo
	memberInvalid  = "MEMBER_INVALID"   // errInfo
)

var (
	ErrMemberNotFound = sharedError.NewDomainError(memberNotFound)
	ErrInvalidMember  = sharedError.NewDomainError(memberInvalid)
)

// Failure is a rejected registry operation.
// Message is the client-facing outcome; the chain unwraps to ErrMemberNotFound or ErrInvalidMember.
type Failure struct {
	Message string
	kind    sharedError.DomainError
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.kind
}

func notFound(message string) *Failure {
	return &Failure{Message: message, kind: ErrMemberNotFound}
}

func invalid(message string) *Failure {
	return &Failure{Message: message, kind: ErrInvalidMember}
}

// FailureMessage returns the client message of a Failure anywhere in err's chain.
func FailureMessage(err error) (string, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Message, true
	}
	return "", false
}

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-001",
		Message: "Member ID not found",
	})

	sharedError.RegisterDomainErrorResponse(memberInvalid, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-002",
		Message: "Invalid member data.",
	})
}
