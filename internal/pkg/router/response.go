// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// corsHeaders are merged onto every response so the demo can be embedded
// from any origin.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type,Authorization,X-Requested-With",
}

// Response is the transport-agnostic shape of one outgoing HTTP response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// ToProxyResponse converts a Response into the API Gateway proxy shape.
// HTTP APIs and function URLs accept the same shape.
func ToProxyResponse(resp Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}

// Write writes the response to a net/http writer for the local preview server.
func (resp Response) Write(w http.ResponseWriter) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}

// ErrorResponse builds the JSON error shape every failure path shares.
func ErrorResponse(status int, message, detail string) Response {
	body := map[string]interface{}{"error": message}
	if detail != "" {
		body["detail"] = detail
	}
	return jsonResponse(status, body)
}

func htmlResponse(status int, body string) Response {
	return Response{
		StatusCode: status,
		Headers:    withCORS("text/html; charset=utf-8"),
		Body:       body,
	}
}

func jsonResponse(status int, body interface{}) Response {
	raw, err := json.Marshal(body)
	if err != nil {
		return Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    withCORS("application/json"),
			Body:       `{"error":"Internal Server Error"}`,
		}
	}
	return Response{
		StatusCode: status,
		Headers:    withCORS("application/json"),
		Body:       string(raw),
	}
}

func emptyResponse(status int) Response {
	return Response{
		StatusCode: status,
		Headers:    withCORS(""),
	}
}

func withCORS(contentType string) map[string]string {
	headers := make(map[string]string, len(corsHeaders)+1)
	for k, v := range corsHeaders {
		headers[k] = v
	}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}
	return headers
}
