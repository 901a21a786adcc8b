// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/httpclient"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	DfltReqPerSec   = 10
	DfltBurstLimit  = 1
	DfltTimeoutSecs = 30
)

type Conf struct {
	ServiceURL  string  `json:"serviceUrl"`
	ReqPerSec   float64 `json:"reqPerSec"`
	BurstLimit  int     `json:"burstLimit"`
	TimeoutSecs int     `json:"timeoutSecs"`
}

func (conf *Conf) Validate(context string) error {
	if conf.ServiceURL == "" {
		return fmt.Errorf("%s.serviceUrl is missing/empty", context)
	}
	if _, err := url.Parse(conf.ServiceURL); err != nil {
		return fmt.Errorf("%s.serviceUrl is invalid: %w", context, err)
	}
	if conf.ReqPerSec == 0 {
		conf.ReqPerSec = DfltReqPerSec
		log.Warn().Msgf("%s.reqPerSec not specified, using default %d", context, DfltReqPerSec)
	}
	if conf.BurstLimit == 0 {
		conf.BurstLimit = DfltBurstLimit
	}
	if conf.TimeoutSecs == 0 {
		conf.TimeoutSecs = DfltTimeoutSecs
		log.Warn().Msgf("%s.timeoutSecs not specified, using default %d", context, DfltTimeoutSecs)
	}
	return nil
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseResponse struct {
	Sentences []*Sentence `json:"sentences"`
	Error     string      `json:"error,omitempty"`
}

// Client is a Parser backed by a remote parsing service. Requests
// are throttled so a large corpus cannot overload the service.
type Client struct {
	serviceURL string
	client     *http.Client
	limiter    *rate.Limiter
}

func (c *Client) Parse(ctx context.Context, text string) (*Sentence, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to call parser: %w", err)
	}
	body, err := sonic.Marshal(parseRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to call parser: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serviceURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to call parser: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call parser: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read parser response: %w", err)
	}
	log.Debug().
		Str("url", c.serviceURL).
		Int("status", resp.StatusCode).
		Msg("parser request")
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser responded with status %d", resp.StatusCode)
	}
	var ans parseResponse
	if err := sonic.Unmarshal(respBody, &ans); err != nil {
		return nil, fmt.Errorf("failed to decode parser response: %w", err)
	}
	if ans.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnparsable, ans.Error)
	}
	if len(ans.Sentences) == 0 || ans.Sentences[0] == nil || len(ans.Sentences[0].Terminals) == 0 {
		return nil, ErrUnparsable
	}
	return ans.Sentences[0], nil
}

func NewClient(conf *Conf) *Client {
	client := httpclient.New(
		httpclient.WithIdleConnTimeout(time.Duration(60) * time.Second),
	)
	client.Timeout = time.Duration(conf.TimeoutSecs) * time.Second
	return &Client{
		serviceURL: conf.ServiceURL,
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(conf.ReqPerSec), conf.BurstLimit),
	}
}
