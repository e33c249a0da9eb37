// Package routes resolves logical Discord REST operations to request
// routes. A Route carries both the full request path and the bucket key
// used for rate-limit accounting. The key keeps only major parameters
// (channel, guild), so every message under one channel shares a bucket
// the way the remote limiter accounts for them.
package routes

import "strings"

const (
	channelMessagesPath  = "channels/{channel.id}/messages"
	channelMessagePath   = "channels/{channel.id}/messages/{message.id}"
	channelPath          = "channels/{channel.id}"
	channelReactionsPath = "channels/{channel.id}/messages/{message.id}/reactions/{emoji}/@me"
	currentUserPath      = "users/@me"
	userPath             = "users/{user.id}"
)

// Route identifies one endpoint instance. Key is the rate-limit bucket
// identity; Path is the concrete request path. Routes are values and
// never mutated after construction; equal Keys always hit the same bucket.
type Route struct {
	Key  string
	Path string
}

func ChannelMessages(channelId string) Route {
	p := expand(channelMessagesPath, "{channel.id}", channelId)
	return Route{Key: p, Path: p}
}

func ChannelMessage(channelId, messageId string) Route {
	return Route{
		Key:  expand(channelMessagesPath, "{channel.id}", channelId),
		Path: expand(channelMessagePath, "{channel.id}", channelId, "{message.id}", messageId),
	}
}

func ChannelMessageReaction(channelId, messageId, emoji string) Route {
	return Route{
		Key: expand(channelMessagesPath, "{channel.id}", channelId),
		Path: expand(channelReactionsPath,
			"{channel.id}", channelId,
			"{message.id}", messageId,
			"{emoji}", emoji,
		),
	}
}

func Channel(channelId string) Route {
	p := expand(channelPath, "{channel.id}", channelId)
	return Route{Key: p, Path: p}
}

func CurrentUser() Route {
	return Route{Key: currentUserPath, Path: currentUserPath}
}

func User(userId string) Route {
	// User lookups share one bucket; the remote side limits them together.
	return Route{
		Key:  userPath,
		Path: expand(userPath, "{user.id}", userId),
	}
}

// expand replaces template placeholders with their values.
// pairs is a flat placeholder/value list.
func expand(template string, pairs ...string) string {
	out := template
	for i := 0; i+1 < len(pairs); i += 2 {
		out = strings.Replace(out, pairs[i], pairs[i+1], 1)
	}
	return out
}
