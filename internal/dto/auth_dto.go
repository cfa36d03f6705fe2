package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse mirrors the auth backend's token payload: a bearer token plus
// the permission map driving client-side gating.
type LoginResponse struct {
	AccessToken string                 `json:"access_token"`
	Permissions map[string]interface{} `json:"permissions"`
	Name        string                 `json:"name"`
	FamilyName  string                 `json:"family_name"`
	Username    string                 `json:"username"`
	Email       string                 `json:"email"`
	PhoneNumber string                 `json:"phone_number"`
}
