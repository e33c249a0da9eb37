package api

import (
	"net/http"

	"github.com/bfolkens/nostrum/logger"
	"github.com/bfolkens/nostrum/rate"
	"github.com/bfolkens/nostrum/routes"
	"github.com/bfolkens/nostrum/types"
)

// Users implements the /users API methods.
// See: https://discord.com/developers/docs/resources/user
type Users struct {
	api *apiClient
}

func NewUsersApi(
	token string,
	httpClient *http.Client,
	limiter rate.Limiter,
	logger logger.Logger,
) *Users {
	return &Users{
		api: newApiClient(token, httpClient, limiter, logger),
	}
}

// GetCurrent returns the bot's own user record.
func (u *Users) GetCurrent() (*types.User, error) {
	var res types.User
	return toNilErr(&res, u.api.getJson(
		routes.CurrentUser(), &res,
	))
}

func (u *Users) MustGetCurrent() *types.User {
	return must(u.GetCurrent())
}

func (u *Users) Get(userId string) (*types.User, error) {
	var res types.User
	return toNilErr(&res, u.api.getJson(
		routes.User(userId), &res,
	))
}

func (u *Users) MustGet(userId string) *types.User {
	return must(u.Get(userId))
}

func (u *Users) ModifyCurrent(mod types.UserModify) (*types.User, error) {
	var res types.User
	return toNilErr(&res, u.api.patchJson(
		routes.CurrentUser(), mod, &res,
	))
}

func (u *Users) MustModifyCurrent(mod types.UserModify) *types.User {
	return must(u.ModifyCurrent(mod))
}
