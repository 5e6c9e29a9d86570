// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient 实现 net/rpc/jsonrpc 服务端的 http 客户端
package jsonclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

var requestID uint64

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	client *http.Client
}

// NewJSONClient produce a json object
func NewJSONClient(url string) (*JSONClient, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &JSONClient{url: url, client: &http.Client{Timeout: 60 * time.Second}}, nil
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     uint64         `json:"id"`
}

type clientResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

// Call jrpc call, method 形如 Coinflip.GetGame
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	req := &clientRequest{Method: method, ID: atomic.AddUint64(&requestID, 1)}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer postresp.Body.Close()
	b, err := io.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	if postresp.StatusCode != http.StatusOK {
		return fmt.Errorf("http status %d: %s", postresp.StatusCode, strings.TrimSpace(string(b)))
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, &cresp); err != nil {
		return err
	}
	if cresp.Error != nil {
		x, ok := cresp.Error.(string)
		if !ok {
			return fmt.Errorf("invalid error %v", cresp.Error)
		}
		if x == "" {
			x = "unspecified error"
		}
		return errors.New(x)
	}
	if cresp.Result == nil {
		return errors.New("empty result")
	}
	return json.Unmarshal(*cresp.Result, resp)
}
