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


package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/ybbus/httpretry"
	"gopkg.in/yaml.v3"

	"github.com/authgate/authgate/internal/handler/management"
)

const (
	flagEndpoint = "endpoint"
	flagOutput   = "output"
	flagRetries  = "retries"
	flagTimeout  = "timeout"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	defaultRetries = 3
	defaultTimeout = 5 * time.Second
	minRetryDelay  = 100 * time.Millisecond
	maxRetryDelay  = 1 * time.Second
)

var (
	ErrNoEndpoint           = errors.New("no endpoint provided")
	ErrUnexpectedStatusCode = errors.New("unexpected HTTP status code")
	ErrUnexpectedResponse   = errors.New("unexpected response")
	ErrUnsupportedFormat    = errors.New("unsupported output format")
)

func NewHealthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "health",
		Short:   "Checks the health status of an authgate deployment",
		Example: "authgate health -e http://localhost:4457",
		RunE: func(cmd *cobra.Command, _ []string) error {
			endpointURL, _ := cmd.Flags().GetString(flagEndpoint)
			outputFormat, _ := cmd.Flags().GetString(flagOutput)
			retries, _ := cmd.Flags().GetInt(flagRetries)
			timeout, _ := cmd.Flags().GetDuration(flagTimeout)

			if !slices.Contains([]string{formatText, formatJSON, formatYAML}, outputFormat) {
				return fmt.Errorf("%w: %s", ErrUnsupportedFormat, outputFormat)
			}

			rawResp, err := fetchHealthStatus(cmd.Context(), newClient(retries, timeout), endpointURL)
			if err != nil {
				return err
			}

			out, err := render(rawResp, outputFormat)
			if err != nil {
				return err
			}

			cmd.Println(out)

			return nil
		},
	}

	cmd.PersistentFlags().StringP(flagEndpoint, "e", "", `The base URL of authgate's management service.
Note: The endpoint URL should point to a single authgate deployment.
If the endpoint URL points to a Load Balancer, these commands will effectively test the Load Balancer.`)
	cmd.PersistentFlags().StringP(flagOutput, "o", formatText, `The format for the result output.
Can be "json", "text", or "yaml".`)
	cmd.PersistentFlags().Int(flagRetries, defaultRetries,
		"How often to retry the request on connection errors or 5xx responses.")
	cmd.PersistentFlags().Duration(flagTimeout, defaultTimeout, "Timeout for a single request.")

	return cmd
}

func newClient(retries int, timeout time.Duration) *http.Client {
	return httpretry.NewCustomClient(
		&http.Client{Timeout: timeout},
		httpretry.WithMaxRetryCount(retries),
		httpretry.WithBackoffPolicy(httpretry.ExponentialBackoff(minRetryDelay, maxRetryDelay, 0)),
	)
}

func fetchHealthStatus(ctx context.Context, client *http.Client, endpointURL string) ([]byte, error) {
	if len(endpointURL) == 0 {
		return nil, ErrNoEndpoint
	}

	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimSuffix(endpointURL, "/")+management.EndpointHealth, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatusCode, resp.Status)
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if !gjson.ValidBytes(rawResp) || !gjson.GetBytes(rawResp, "status").Exists() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, rawResp)
	}

	return rawResp, nil
}

func render(rawResp []byte, format string) (string, error) {
	switch format {
	case formatJSON:
		return string(rawResp), nil
	case formatYAML:
		var structured map[string]any
		if err := json.Unmarshal(rawResp, &structured); err != nil {
			return "", fmt.Errorf("failed to unmarshal response: %w", err)
		}

		rawYaml, err := yaml.Marshal(structured)
		if err != nil {
			return "", fmt.Errorf("failed to convert response to yaml: %w", err)
		}

		return strings.TrimSuffix(string(rawYaml), "\n"), nil
	case formatText:
		return gjson.GetBytes(rawResp, "status").String(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
