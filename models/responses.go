package models

// TokenResponse is the JSON body returned by the token endpoint after a
// successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
