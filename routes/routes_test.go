package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_message_routes_share_the_channel_bucket(t *testing.T) {
	create := ChannelMessages("42")
	edit := ChannelMessage("42", "100")
	del := ChannelMessage("42", "200")
	react := ChannelMessageReaction("42", "100", "%F0%9F%91%8D")

	assert.Equal(t, create.Key, edit.Key)
	assert.Equal(t, create.Key, del.Key)
	assert.Equal(t, create.Key, react.Key)

	assert.Equal(t, "channels/42/messages", create.Path)
	assert.Equal(t, "channels/42/messages/100", edit.Path)
	assert.Equal(t, "channels/42/messages/100/reactions/%F0%9F%91%8D/@me", react.Path)
}

func Test_different_channels_use_different_buckets(t *testing.T) {
	assert.NotEqual(t, ChannelMessages("42").Key, ChannelMessages("43").Key)
	assert.NotEqual(t, Channel("42").Key, ChannelMessages("42").Key)
}

func Test_user_routes(t *testing.T) {
	assert.Equal(t, "users/@me", CurrentUser().Path)
	assert.Equal(t, CurrentUser().Key, CurrentUser().Path)

	u := User("7")
	assert.Equal(t, "users/7", u.Path)
	assert.Equal(t, User("8").Key, u.Key)
}
