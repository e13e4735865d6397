package dto

import "github.com/hqasem/small-biz-erp/internal/core/domain"

// LoginRequest carries the credentials posted to /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser is the user summary embedded in a successful login response.
type LoginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	RoleID   int64  `json:"role_id"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// ToLoginResponse builds the login payload from a token and its user.
func ToLoginResponse(token string, user *domain.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User: LoginUser{
			ID:       user.UserID,
			Username: user.Username,
			Email:    user.Email,
			RoleID:   user.RoleID,
		},
	}
}
