// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/gifcamp/gifcamp/models"
)

// envelopeHolder is satisfied by every response model via the embedded
// [models.Envelope].
type envelopeHolder interface {
	Env() *models.Envelope
}

// decodeResponse fills out from the response body and classifies the
// result under the shared backend contract:
//
//   - a non-JSON body is wrapped as {error: <!ok>, description: <text>};
//   - the response is a failure iff the HTTP status is outside 2xx OR the
//     parsed body carries error == true;
//   - the failure message comes from the body's description field, with
//     "HTTP <status>: <statusText>" synthesized when it is absent.
func decodeResponse(resp *resty.Response, out envelopeHolder) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			env := out.Env()
			env.Error = !resp.IsSuccess()
			env.Description = strings.TrimSpace(string(body))
		}
	}

	return classify(resp, *out.Env())
}

func classify(resp *resty.Response, env models.Envelope) error {
	if resp.IsSuccess() && !env.Error {
		return nil
	}

	description := env.Description
	if description == "" {
		description = fmt.Sprintf("HTTP %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	return &BackendError{Status: resp.StatusCode(), Description: description}
}
