package member

import "github.com/changhyeonkim/member-registry/internal/model"

// MemberInput is the body of POST /members and PUT /members/:id.
// A nil field means the client sent null or omitted it.
type MemberInput struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}

// NewMemberInput builds an input with every field present
func NewMemberInput(name, address, phoneNumber string) MemberInput {
	return MemberInput{
		Name:        &name,
		Address:     &address,
		PhoneNumber: &phoneNumber,
	}
}

// memberURI binds the :id path segment. No binding tag: 0 and negatives are
// valid input here and are reported by the registry as unknown ids.
type memberURI struct {
	ID int `uri:"id"`
}

// Result is a successful registry operation.
// Member is nil for deletes.
type Result struct {
	Message string
	Member  *model.Member
}
