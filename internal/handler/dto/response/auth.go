package response

import "stayhub/internal/usecase/queries"

type RegisterResponse struct {
	ID string `json:"id"`
}

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
