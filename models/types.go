package models

// Gender constants
const (
	GenderMan   = "man"
	GenderWoman = "woman"
)

// Request types

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type RegisterResponse struct {
	Message     string `json:"message"`
	RedirectURL string `json:"redirect_url"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	RedirectURL string `json:"redirect_url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthStatusResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
}

// Domain types

type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"` // Never expose in JSON
	Measurements Measurements `json:"measurements"`
}

// Measurements holds the optional anthropometric fields of a user record.
// Every field is independently nullable. Nulls are serialized explicitly
// (no omitempty) so clients can tell "never set" from absent.
type Measurements struct {
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
	Chest     *float64 `json:"chest"`
	Underbust *float64 `json:"underbust"`
	Waist     *float64 `json:"waist"`
	Hips      *float64 `json:"hips"`
	Sleeve    *float64 `json:"sleeve"`
	Thigh     *float64 `json:"thigh"`
	Inseam    *float64 `json:"inseam"`
	Outseam   *float64 `json:"outseam"`
	Gender    *string  `json:"gender"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
