package errx

// Type represents the category of error
type Type string

const (
	// TypeInternal represents failures inside the SDK itself
	TypeInternal Type = "INTERNAL"

	// TypeValidation represents invalid caller input
	TypeValidation Type = "VALIDATION"

	// TypeAuthorization represents rejected credentials
	TypeAuthorization Type = "AUTHORIZATION"

	// TypeNotFound represents a missing resource, such as an attachment file
	TypeNotFound Type = "NOT_FOUND"

	// TypeConflict represents mutually exclusive inputs
	TypeConflict Type = "CONFLICT"

	// TypeExternal represents errors from the remote API or the network
	TypeExternal Type = "EXTERNAL"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}
