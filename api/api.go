package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/bfolkens/nostrum/errors"
	"github.com/bfolkens/nostrum/logger"
	"github.com/bfolkens/nostrum/rate"
	"github.com/bfolkens/nostrum/routes"
	"github.com/bfolkens/nostrum/types"
)

const (
	baseUrl   = "https://discord.com/api/v10"
	userAgent = "DiscordBot (https://github.com/bfolkens/nostrum, 0.1.0)"
)

// apiClient runs the request pipeline shared by every facade:
// gate on the route's rate-limit bucket, send, feed the response headers
// back into the bucket store, classify the outcome, decode on success.
type apiClient struct {
	token      string
	httpClient *http.Client
	limiter    rate.Limiter
	logger     logger.Logger
}

func newApiClient(
	token string,
	httpClient *http.Client,
	limiter rate.Limiter,
	logger logger.Logger,
) *apiClient {
	return &apiClient{
		token:      token,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

func (c *apiClient) getJson(route routes.Route, resData any) *errors.ApiError {
	return c.sendJson(http.MethodGet, route, nil, resData)
}

func (c *apiClient) postJson(route routes.Route, reqData, resData any) *errors.ApiError {
	return c.sendJson(http.MethodPost, route, reqData, resData)
}

func (c *apiClient) patchJson(route routes.Route, reqData, resData any) *errors.ApiError {
	return c.sendJson(http.MethodPatch, route, reqData, resData)
}

func (c *apiClient) putJson(route routes.Route, reqData, resData any) *errors.ApiError {
	return c.sendJson(http.MethodPut, route, reqData, resData)
}

func (c *apiClient) deleteJson(route routes.Route, reqData, resData any) *errors.ApiError {
	return c.sendJson(http.MethodDelete, route, reqData, resData)
}

// sendJson sends the request and decodes a success body into resData.
// A success body that does not decode is a contract violation with the
// remote API, not a request-specific failure, so it escapes as a
// *errors.DecodeFault panic instead of an ordinary error. No-content
// successes leave resData untouched.
func (c *apiClient) sendJson(
	httpMethod string,
	route routes.Route,
	reqData any,
	resData any,
) *errors.ApiError {
	body, err := c.send(httpMethod, route, reqData)
	if err != nil {
		return err
	}
	if len(body) == 0 || resData == nil {
		return nil
	}
	if jsonErr := json.Unmarshal(body, resData); jsonErr != nil {
		panic(&errors.DecodeFault{
			Route:     route.Path,
			Body:      body,
			SourceErr: jsonErr,
		})
	}
	return nil
}

func (c *apiClient) send(
	httpMethod string,
	route routes.Route,
	reqData any,
) ([]byte, *errors.ApiError) {
	endpoint := baseUrl + "/" + route.Path

	var err error
	var req *http.Request

	if reqData != nil {
		data, jsonErr := json.Marshal(reqData)
		if jsonErr != nil {
			return nil, &errors.ApiError{
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		req, err = http.NewRequest(
			httpMethod, endpoint, bytes.NewBuffer(data),
		)
	} else {
		req, err = http.NewRequest(
			httpMethod, endpoint, nil,
		)
	}

	if err != nil {
		return nil, &errors.ApiError{
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.limiter.Wait(route.Key)

	res, err := c.httpClient.Do(req)

	var status int
	var resBody []byte
	if err == nil {
		status = res.StatusCode
		if res.Body != nil {
			var readErr error
			resBody, readErr = io.ReadAll(res.Body)
			_ = res.Body.Close()
			if readErr != nil {
				// A response arrived, so the headers still count.
				c.limiter.Update(route.Key, res.Header)
				// The body never made it across, so this is a
				// transport failure and carries no status code.
				return nil, &errors.ApiError{
					Type:      errors.TYPE_TRANSPORT,
					SourceErr: readErr,
				}
			}
		}
		c.limiter.Update(route.Key, res.Header)
	}

	out := classify(status, resBody, err)
	switch out.kind {
	case outcomeTransportFailure:
		c.logger.Warnf(
			"transport failure for %s %s: %v",
			httpMethod, route.Path, out.reason,
		)
		return nil, &errors.ApiError{
			Type:      errors.TYPE_TRANSPORT,
			SourceErr: out.reason,
		}
	case outcomeApplicationError:
		apiErr := &errors.ApiError{
			Type:           errors.TYPE_HTTP_STATUS,
			HttpStatusCode: out.status,
			Body:           out.body,
		}
		if len(out.body) > 0 {
			envelope := types.ApiErrorBody{}
			if jsonErr := json.Unmarshal(out.body, &envelope); jsonErr == nil {
				apiErr.DiscordCode = envelope.Code
			}
		}
		c.logger.Debugf(
			"%s %s rejected with status %d",
			httpMethod, route.Path, out.status,
		)
		return nil, apiErr
	default:
		return out.body, nil
	}
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}

// unitErr is toNilErr for operations that return no payload.
func unitErr(e *errors.ApiError) error {
	if e != nil {
		return e
	}
	return nil
}
