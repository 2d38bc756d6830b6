package request

import "strings"

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=128"`
	Password string `json:"password" binding:"required,max=256"`
}

func (r *LoginRequest) Normalized() (username, password string) {
	return strings.TrimSpace(r.Username), r.Password
}
