package services

import "fmt"

// Auth itself is delegated to the identity provider; this file only maps
// provider error codes onto the inline messages the frontend shows.

// AuthError is a provider-surfaced authentication failure.
type AuthError struct {
	Code string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error: %s", e.Code)
}

// Provider error codes surfaced to users
const (
	AuthCodeEmailInUse      = "auth/email-already-in-use"
	AuthCodeInvalidEmail    = "auth/invalid-email"
	AuthCodeNotAllowed      = "auth/operation-not-allowed"
	AuthCodeWeakPassword    = "auth/weak-password"
	AuthCodeUserDisabled    = "auth/user-disabled"
	AuthCodeUserNotFound    = "auth/user-not-found"
	AuthCodeWrongPassword   = "auth/wrong-password"
	AuthCodeTooManyRequests = "auth/too-many-requests"
)

// AuthErrorMessage maps a provider error code to the user-facing message.
// Not-found and wrong-password share one message so login probing cannot
// distinguish them. Unknown codes get the generic message.
func AuthErrorMessage(code string) string {
	switch code {
	case AuthCodeEmailInUse:
		return "This email is already registered"
	case AuthCodeInvalidEmail:
		return "Invalid email address"
	case AuthCodeNotAllowed:
		return "Email/password accounts are not enabled"
	case AuthCodeWeakPassword:
		return "Password should be at least 6 characters"
	case AuthCodeUserDisabled:
		return "This account has been disabled"
	case AuthCodeUserNotFound, AuthCodeWrongPassword:
		return "Email or password is incorrect"
	case AuthCodeTooManyRequests:
		return "Too many failed attempts. Please try again later"
	default:
		return "An error occurred. Please try again"
	}
}
