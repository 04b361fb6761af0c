// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package router dispatches normalized HTTP events to the demo views.
package router

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aws-samples/lambda-canary-demo/internal/pkg/canary"
	"github.com/aws-samples/lambda-canary-demo/internal/pkg/config"
	"github.com/aws-samples/lambda-canary-demo/internal/pkg/identity"
	"github.com/aws-samples/lambda-canary-demo/internal/pkg/version"
	"github.com/aws-samples/lambda-canary-demo/internal/pkg/views"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// demoPaths are the routes advertised on the home view.
var demoPaths = []string{"/", "/health", "/canary", "/competition", "/echo"}

// percentParam is the query parameter carrying the request-supplied percent.
const percentParam = "percent"

// Router serves the demo routes. It holds no per-request state: every
// request re-reads configuration and re-derives the invocation identity.
type Router struct {
	env   config.Environment
	views *views.Renderer

	started      time.Time
	newRequestID func() string
}

// New returns a Router that reads configuration from env.
func New(env config.Environment) *Router {
	return &Router{
		env:          env,
		views:        views.New(),
		started:      time.Now(),
		newRequestID: uuid.NewString,
	}
}

// Route dispatches a request and always produces a response: recovered
// panics and render failures become 500s instead of surfacing to the host
// runtime.
func (r *Router) Route(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if v := recover(); v != nil {
			resp = ErrorResponse(http.StatusInternalServerError, "Internal Server Error", fmt.Sprint(v))
		}
	}()

	if req.Method == http.MethodOptions {
		return emptyResponse(http.StatusNoContent)
	}
	switch {
	case req.Method == http.MethodGet && req.Path == "/":
		return r.home()
	case req.Method == http.MethodGet && req.Path == "/health":
		return r.health(ctx)
	case req.Method == http.MethodGet && req.Path == "/canary":
		return r.canary(ctx, req)
	case req.Path == "/competition" && (req.Method == http.MethodGet || req.Method == http.MethodPost):
		return r.competition(req)
	case req.Method == http.MethodPost && req.Path == "/echo":
		return jsonResponse(http.StatusOK, map[string]interface{}{
			"received": req.JSON,
			"note":     "POST JSON to /echo and I'll send it back.",
		})
	}
	return jsonResponse(http.StatusNotFound, map[string]interface{}{
		"error":  "Not found",
		"method": req.Method,
		"path":   req.Path,
	})
}

func (r *Router) home() Response {
	body, err := r.views.Home(views.HomeData{
		Paths:   demoPaths,
		Version: version.Version,
	})
	if err != nil {
		return renderError(err)
	}
	return htmlResponse(http.StatusOK, body)
}

func (r *Router) health(ctx context.Context) Response {
	id := identity.FromContext(ctx)
	body, err := r.views.Health(views.HealthData{
		OK:           true,
		Time:         time.Now().UTC().Format(time.RFC3339),
		Uptime:       humanize.Time(r.started),
		FunctionName: id.FunctionName,
		Version:      id.Version,
		RequestID:    r.requestID(ctx),
	})
	if err != nil {
		return renderError(err)
	}
	return htmlResponse(http.StatusOK, body)
}

func (r *Router) canary(ctx context.Context, req Request) Response {
	settings := config.Load(r.env)
	id := identity.FromContext(ctx)
	weights := canary.ParseWeightMap(settings.RawWeights)
	pct := canary.Resolve(canary.Inputs{
		Version:          id.Version,
		Weights:          weights,
		RequestedPercent: req.Query[percentParam],
		FallbackPercent:  settings.FallbackPercent,
	})
	body, err := r.views.Canary(views.CanaryData{
		Percent:   pct,
		Segment:   string(canary.ClassifySegment(pct)),
		Weights:   weights,
		Version:   id.Version,
		Alias:     id.Alias,
		Region:    id.Region,
		Account:   id.Account,
		Requested: req.Query[percentParam],
		Banner:    req.Headers[settings.BannerHeader],
	})
	if err != nil {
		return renderError(err)
	}
	return htmlResponse(http.StatusOK, body)
}

func (r *Router) competition(req Request) Response {
	data := views.CompetitionData{}
	if req.Method == http.MethodPost {
		data.Submitted = true
		data.Name, data.Score = entryFields(req)
		if data.Name == "" {
			data.Name = "anonymous"
		}
	}
	body, err := r.views.Competition(data)
	if err != nil {
		return renderError(err)
	}
	return htmlResponse(http.StatusOK, body)
}

// entryFields pulls a competition entry out of a JSON or form-encoded body.
func entryFields(req Request) (name, score string) {
	if req.JSON != nil {
		return fieldString(req.JSON, "name"), fieldString(req.JSON, "score")
	}
	values, err := url.ParseQuery(string(req.Body))
	if err != nil {
		return "", ""
	}
	return values.Get("name"), values.Get("score")
}

func fieldString(body map[string]interface{}, key string) string {
	v, ok := body[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// requestID prefers the runtime-assigned id and falls back to a fresh UUID
// when running outside Lambda.
func (r *Router) requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return r.newRequestID()
}

func renderError(err error) Response {
	return ErrorResponse(http.StatusInternalServerError, "Internal Server Error", err.Error())
}
