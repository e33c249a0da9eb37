package types

type Message struct {
	Id              string `json:"id"`
	ChannelId       string `json:"channel_id"`
	Author          User   `json:"author"`
	Content         string `json:"content"`
	Timestamp       string `json:"timestamp"`
	EditedTimestamp string `json:"edited_timestamp,omitempty"`
	Tts             bool   `json:"tts"`
	Pinned          bool   `json:"pinned"`
	Type            int    `json:"type"`
}

type MessageSend struct {
	Content string `json:"content"`

	// Whether the message is read aloud by clients.
	// Defaults to false.
	Tts bool `json:"tts,omitempty"`

	// Opaque value echoed back in the created message; used by callers
	// to correlate optimistic sends with the server's copy.
	Nonce string `json:"nonce,omitempty"`
}

type MessageEdit struct {
	Content string `json:"content"`
}

type MessagesQuery struct {
	// Maximum number of messages to return (1-100).
	// Zero means the server default.
	Limit int

	// Return messages strictly before this message id.
	Before string

	// Return messages strictly after this message id.
	After string
}
