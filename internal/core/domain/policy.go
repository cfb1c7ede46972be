package domain

// Caller is the authenticated identity behind a request.
type Caller struct {
	UserID string
	Role   string
}

// Resource names a protected collection.
type Resource string

const (
	ResourceCountry     Resource = "country"
	ResourceCompetition Resource = "competition"
	ResourceParticipant Resource = "participant"
	ResourceVote        Resource = "vote"
	ResourceAccount     Resource = "account"
)

// Action names an operation on a Resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// RoleSensitive reports whether the decision for action on resource depends
// on the caller's role. For those the role must be read from the stored
// account, since a token keeps its role claim until it expires.
func RoleSensitive(resource Resource, action Action) bool {
	switch resource {
	case ResourceCountry, ResourceCompetition, ResourceParticipant:
		return action != ActionRead
	}
	return false
}

// Authorize decides whether caller may perform action on resource.
// Reference data (countries, competitions, participants) is world-readable
// and admin-writable; votes and the caller's own account need any
// authenticated user.
func Authorize(caller Caller, resource Resource, action Action) error {
	switch resource {
	case ResourceCountry, ResourceCompetition, ResourceParticipant:
		if action == ActionRead {
			return nil
		}
		if caller.Role == RoleAdmin {
			return nil
		}
		return ErrForbidden
	case ResourceVote, ResourceAccount:
		if caller.UserID == "" {
			return ErrUnauthorized
		}
		return nil
	}
	return ErrForbidden
}
