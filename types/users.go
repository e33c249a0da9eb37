package types

type User struct {
	Id            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator,omitempty"`
	GlobalName    string `json:"global_name,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	Bot           bool   `json:"bot,omitempty"`
}

type UserModify struct {
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// ApiErrorBody is the error envelope the API returns on 4xx/5xx.
// Errors is kept raw; parsers.ApiErrorBodyFromBytes decodes the
// envelope and parsers.FieldErrors flattens the nested errors object.
type ApiErrorBody struct {
	Code       int            `json:"code"`
	Message    string         `json:"message"`
	Errors     map[string]any `json:"errors,omitempty"`
	RetryAfter float64        `json:"retry_after,omitempty"`
	Global     bool           `json:"global,omitempty"`
}
