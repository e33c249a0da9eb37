package types

const (
	CHANNEL_GuildText     = 0
	CHANNEL_Dm            = 1
	CHANNEL_GuildVoice    = 2
	CHANNEL_GroupDm       = 3
	CHANNEL_GuildCategory = 4
)

type Channel struct {
	Id            string `json:"id"`
	Type          int    `json:"type"`
	GuildId       string `json:"guild_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Topic         string `json:"topic,omitempty"`
	Nsfw          bool   `json:"nsfw,omitempty"`
	LastMessageId string `json:"last_message_id,omitempty"`
}

type ChannelModify struct {
	Name  string `json:"name,omitempty"`
	Topic string `json:"topic,omitempty"`
	Nsfw  *bool  `json:"nsfw,omitempty"`
}
