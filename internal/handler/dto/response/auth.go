package response

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type MeResponse struct {
	Username string `json:"username"`
}
