package response

import "github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

type AuthResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
