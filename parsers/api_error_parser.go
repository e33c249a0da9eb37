package parsers

import (
	"encoding/json"

	"github.com/bfolkens/nostrum/errors"
	"github.com/bfolkens/nostrum/types"
)

// The pipeline surfaces application errors with their raw body attached
// and leaves interpretation to the caller. These helpers decode Discord's
// error envelope {code, message, errors{...}} out of that body when a
// caller wants the structured form.

func ApiErrorBodyFromError(err *errors.ApiError) (types.ApiErrorBody, bool) {
	if err == nil {
		var empty types.ApiErrorBody
		return empty, false
	}
	return ApiErrorBodyFromBytes(err.Body)
}

func ApiErrorBodyFromBytes(data []byte) (types.ApiErrorBody, bool) {
	var result types.ApiErrorBody
	if err := json.Unmarshal(data, &result); err != nil {
		var empty types.ApiErrorBody
		return empty, false
	}
	if result.Code == 0 && result.Message == "" {
		var empty types.ApiErrorBody
		return empty, false
	}

	return result, true
}

// FieldErrors flattens the nested errors object into dotted field paths,
// e.g. "embed.fields.0.name" -> ["Must be 256 or fewer in length."].
// Non-envelope shapes yield an empty map.
func FieldErrors(body types.ApiErrorBody) map[string][]string {
	out := make(map[string][]string)
	flattenErrors("", body.Errors, out)
	return out
}

func flattenErrors(prefix string, node map[string]any, out map[string][]string) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			if msgs, ok := extractMessages(v); ok {
				out[path] = msgs
				continue
			}
			flattenErrors(path, v, out)
		}
	}
}

// extractMessages pulls the terminal {"_errors":[{"code","message"}]}
// node apart, returning false when the shape is anything else.
func extractMessages(node map[string]any) ([]string, bool) {
	raw, ok := node["_errors"]
	if !ok {
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	var msgs []string
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if msg, ok := entry["message"].(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs, true
}
