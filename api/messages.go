package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/bfolkens/nostrum/logger"
	"github.com/bfolkens/nostrum/rate"
	"github.com/bfolkens/nostrum/routes"
	"github.com/bfolkens/nostrum/types"
)

// Messages implements the /channels/{id}/messages API methods.
// See: https://discord.com/developers/docs/resources/message
//
// Every operation comes in two forms: the safe form returning
// (value, error), and a Must* form that panics with the same
// *errors.ApiError instead of returning it.
type Messages struct {
	api *apiClient
}

func NewMessagesApi(
	token string,
	httpClient *http.Client,
	limiter rate.Limiter,
	logger logger.Logger,
) *Messages {
	return &Messages{
		api: newApiClient(token, httpClient, limiter, logger),
	}
}

func (m *Messages) Create(channelId string, msg types.MessageSend) (*types.Message, error) {
	var res types.Message
	return toNilErr(&res, m.api.postJson(
		routes.ChannelMessages(channelId), msg, &res,
	))
}

func (m *Messages) MustCreate(channelId string, msg types.MessageSend) *types.Message {
	return must(m.Create(channelId, msg))
}

func (m *Messages) Edit(channelId, messageId string, edit types.MessageEdit) (*types.Message, error) {
	var res types.Message
	return toNilErr(&res, m.api.patchJson(
		routes.ChannelMessage(channelId, messageId), edit, &res,
	))
}

func (m *Messages) MustEdit(channelId, messageId string, edit types.MessageEdit) *types.Message {
	return must(m.Edit(channelId, messageId, edit))
}

func (m *Messages) Delete(channelId, messageId string) error {
	return unitErr(m.api.deleteJson(
		routes.ChannelMessage(channelId, messageId), nil, nil,
	))
}

func (m *Messages) MustDelete(channelId, messageId string) {
	mustUnit(m.Delete(channelId, messageId))
}

func (m *Messages) Get(channelId, messageId string) (*types.Message, error) {
	var res types.Message
	return toNilErr(&res, m.api.getJson(
		routes.ChannelMessage(channelId, messageId), &res,
	))
}

func (m *Messages) MustGet(channelId, messageId string) *types.Message {
	return must(m.Get(channelId, messageId))
}

func (m *Messages) List(channelId string, query types.MessagesQuery) ([]types.Message, error) {
	route := routes.ChannelMessages(channelId)

	values := url.Values{}
	if query.Limit > 0 {
		values.Add("limit", strconv.Itoa(query.Limit))
	}
	if query.Before != "" {
		values.Add("before", query.Before)
	}
	if query.After != "" {
		values.Add("after", query.After)
	}
	if len(values) > 0 {
		route.Path += "?" + values.Encode()
	}

	var res []types.Message
	return toNilErr(res, m.api.getJson(route, &res))
}

func (m *Messages) MustList(channelId string, query types.MessagesQuery) []types.Message {
	return must(m.List(channelId, query))
}

// CreateReaction adds the bot's reaction to a message. The emoji is
// either a unicode emoji or a "name:id" custom emoji reference.
func (m *Messages) CreateReaction(channelId, messageId, emoji string) error {
	return unitErr(m.api.putJson(
		routes.ChannelMessageReaction(channelId, messageId, url.PathEscape(emoji)),
		nil, nil,
	))
}

func (m *Messages) MustCreateReaction(channelId, messageId, emoji string) {
	mustUnit(m.CreateReaction(channelId, messageId, emoji))
}

func (m *Messages) DeleteOwnReaction(channelId, messageId, emoji string) error {
	return unitErr(m.api.deleteJson(
		routes.ChannelMessageReaction(channelId, messageId, url.PathEscape(emoji)),
		nil, nil,
	))
}

func (m *Messages) MustDeleteOwnReaction(channelId, messageId, emoji string) {
	mustUnit(m.DeleteOwnReaction(channelId, messageId, emoji))
}
