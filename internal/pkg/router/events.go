// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Request is the transport-agnostic shape of one incoming HTTP request.
// Header keys are lower-cased so lookups don't depend on the event source's
// casing.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
	// JSON holds the decoded body when the content type is application/json
	// and the body is a JSON object; nil otherwise.
	JSON map[string]interface{}
}

// FromRaw normalizes a raw Lambda payload, detecting whether it is a REST
// API (v1) event or an HTTP API / function URL (v2) event.
func FromRaw(payload []byte) (Request, error) {
	var probe struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return Request{}, fmt.Errorf("unmarshal event payload: %w", err)
	}
	if strings.HasPrefix(probe.Version, "2.") {
		var event events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return Request{}, fmt.Errorf("unmarshal v2 event: %w", err)
		}
		return FromV2Request(event), nil
	}
	var event events.APIGatewayProxyRequest
	if err := json.Unmarshal(payload, &event); err != nil {
		return Request{}, fmt.Errorf("unmarshal v1 event: %w", err)
	}
	return FromProxyRequest(event), nil
}

// FromProxyRequest normalizes a REST API (v1) proxy event.
func FromProxyRequest(event events.APIGatewayProxyRequest) Request {
	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}
	path := event.Path
	if path == "" {
		path = "/"
	}
	req := Request{
		Method:  strings.ToUpper(method),
		Path:    path,
		Headers: lowerKeys(event.Headers),
		Query:   event.QueryStringParameters,
	}
	if req.Query == nil {
		req.Query = map[string]string{}
	}
	req.Body = decodeBody(event.Body, event.IsBase64Encoded)
	req.JSON = decodeJSONBody(req.Headers, req.Body)
	return req
}

// FromV2Request normalizes an HTTP API (v2) event. Lambda function URL
// events share this shape.
func FromV2Request(event events.APIGatewayV2HTTPRequest) Request {
	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}
	path := event.RawPath
	if path == "" {
		path = event.RequestContext.HTTP.Path
	}
	if path == "" {
		path = "/"
	}
	req := Request{
		Method:  strings.ToUpper(method),
		Path:    path,
		Headers: lowerKeys(event.Headers),
		Query:   event.QueryStringParameters,
	}
	if req.Query == nil {
		req.Query = map[string]string{}
	}
	req.Body = decodeBody(event.Body, event.IsBase64Encoded)
	req.JSON = decodeJSONBody(req.Headers, req.Body)
	return req
}

// FromHTTP normalizes a net/http request so the local preview server can
// reuse the Lambda routing path.
func FromHTTP(r *http.Request) Request {
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		if len(v) > 0 {
			headers[strings.ToLower(k)] = v[0]
		}
	}
	query := map[string]string{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}
	body, _ := io.ReadAll(r.Body)
	return Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: headers,
		Query:   query,
		Body:    body,
		JSON:    decodeJSONBody(headers, body),
	}
}

func lowerKeys(headers map[string]string) map[string]string {
	lowered := make(map[string]string, len(headers))
	for k, v := range headers {
		lowered[strings.ToLower(k)] = v
	}
	return lowered
}

func decodeBody(body string, isBase64 bool) []byte {
	if body == "" {
		return nil
	}
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			// Keep the raw bytes; the body is display-fodder, not a contract.
			return []byte(body)
		}
		return decoded
	}
	return []byte(body)
}

func decodeJSONBody(headers map[string]string, body []byte) map[string]interface{} {
	if len(body) == 0 || !strings.Contains(headers["content-type"], "application/json") {
		return nil
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil
	}
	return decoded
}
