package api

import (
	"net/http"

	"github.com/bfolkens/nostrum/logger"
	"github.com/bfolkens/nostrum/rate"
	"github.com/bfolkens/nostrum/routes"
	"github.com/bfolkens/nostrum/types"
)

// Channels implements the /channels API methods.
// See: https://discord.com/developers/docs/resources/channel
type Channels struct {
	api *apiClient
}

func NewChannelsApi(
	token string,
	httpClient *http.Client,
	limiter rate.Limiter,
	logger logger.Logger,
) *Channels {
	return &Channels{
		api: newApiClient(token, httpClient, limiter, logger),
	}
}

func (c *Channels) Get(channelId string) (*types.Channel, error) {
	var res types.Channel
	return toNilErr(&res, c.api.getJson(
		routes.Channel(channelId), &res,
	))
}

func (c *Channels) MustGet(channelId string) *types.Channel {
	return must(c.Get(channelId))
}

func (c *Channels) Modify(channelId string, mod types.ChannelModify) (*types.Channel, error) {
	var res types.Channel
	return toNilErr(&res, c.api.patchJson(
		routes.Channel(channelId), mod, &res,
	))
}

func (c *Channels) MustModify(channelId string, mod types.ChannelModify) *types.Channel {
	return must(c.Modify(channelId, mod))
}

// Delete removes the channel and returns its final state, which the API
// sends back in the delete response.
func (c *Channels) Delete(channelId string) (*types.Channel, error) {
	var res types.Channel
	return toNilErr(&res, c.api.deleteJson(
		routes.Channel(channelId), nil, &res,
	))
}

func (c *Channels) MustDelete(channelId string) *types.Channel {
	return must(c.Delete(channelId))
}
