package errno

const (
	StatusOK = 10000
)

const (
	IdentityMissing = 40000 + iota
	IdentityInvalid
)

const (
	InternalError = 50000 + iota
	InvalidParam
	UserAlreadyExists
	UserNotFound
	InvalidCredentials
	EventPublishFailed
)

// moderation
const (
	DuplicateSubmission = 60000 + iota
	ListingNotFound
	InvalidTransition
)

// catalog
const (
	ShopNotFound = 70000 + iota
	StatisticsNotFound
)

// Message returns the default message for a status code.
func Message(code int) string {
	switch code {
	case StatusOK:
		return "ok"
	case IdentityMissing:
		return "missing user identity"
	case IdentityInvalid:
		return "invalid user identity"
	case InvalidParam:
		return "invalid param"
	case UserAlreadyExists:
		return "user already exists"
	case UserNotFound:
		return "user not found"
	case InvalidCredentials:
		return "invalid credentials"
	case EventPublishFailed:
		return "saved, event delivery pending"
	case DuplicateSubmission:
		return "duplicate submission"
	case ListingNotFound:
		return "listing not found"
	case InvalidTransition:
		return "invalid status transition"
	case ShopNotFound:
		return "shop not found"
	case StatisticsNotFound:
		return "statistics not found"
	default:
		return "internal error"
	}
}
