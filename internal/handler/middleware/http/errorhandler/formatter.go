// Copyright 2026 The authgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


package errorhandler

import (
	"errors"
	"html"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

type renderer func(err error) ([]byte, error)

// nolint: gochecknoglobals
var (
	renderers = map[string]renderer{
		"text/html":        renderHTML,
		"application/json": renderJSON,
		"text/plain":       renderPlain,
	}
	acceptableTypes = []contenttype.MediaType{
		contenttype.NewMediaType("text/html"),
		contenttype.NewMediaType("application/json"),
		contenttype.NewMediaType("text/plain"),
	}
)

func renderHTML(err error) ([]byte, error) {
	return []byte("<p>" + html.EscapeString(err.Error()) + "</p>"), nil
}

func renderJSON(err error) ([]byte, error) {
	var marshaler json.Marshaler
	if errors.As(err, &marshaler) {
		return marshaler.MarshalJSON()
	}

	return json.Marshal(map[string]string{"message": err.Error()})
}

func renderPlain(err error) ([]byte, error) { return []byte(err.Error()), nil }

func render(req *http.Request, err error) (string, []byte, error) {
	mediaType, _, err2 := contenttype.GetAcceptableMediaType(req, acceptableTypes)
	if err2 != nil {
		return "", nil, err2
	}

	contentType := mediaType.Type + "/" + mediaType.Subtype

	body, err2 := renderers[contentType](err)

	return contentType, body, err2
}

func errorWriter(o *opts, code int) func(rw http.ResponseWriter, req *http.Request, err error) {
	return func(rw http.ResponseWriter, req *http.Request, err error) {
		if !o.verboseErrors {
			rw.WriteHeader(code)

			return
		}

		contentType, body, renderErr := render(req, err)
		if renderErr != nil {
			zerolog.Ctx(req.Context()).Warn().Err(renderErr).Msg("Failed rendering error response. No body is sent")
		}

		if len(body) == 0 {
			rw.WriteHeader(code)

			return
		}

		rw.Header().Set("Content-Type", contentType)
		rw.Header().Set("X-Content-Type-Options", "nosniff")
		rw.WriteHeader(code)
		_, _ = rw.Write(body)
	}
}
