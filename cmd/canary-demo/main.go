// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main is the Lambda entrypoint for the canary demo dashboard.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aws-samples/lambda-canary-demo/internal/pkg/config"
	"github.com/aws-samples/lambda-canary-demo/internal/pkg/router"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	rt := router.New(config.NewEnvironment())
	lambda.Start(handler(rt))
}

// handler adapts the router to raw Lambda payloads so a single function can
// sit behind API Gateway REST APIs, HTTP APIs, and function URLs.
func handler(rt *router.Router) func(ctx context.Context, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
		req, err := router.FromRaw(payload)
		if err != nil {
			log.Printf("malformed event: %v", err)
			resp := router.ErrorResponse(http.StatusInternalServerError, "Internal Server Error", err.Error())
			return router.ToProxyResponse(resp), nil
		}
		resp := rt.Route(ctx, req)
		log.Printf("%s %s %d", req.Method, req.Path, resp.StatusCode)
		return router.ToProxyResponse(resp), nil
	}
}
