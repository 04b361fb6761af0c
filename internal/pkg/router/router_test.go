// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/require"
)

// envStub is an in-memory config.Environment.
type envStub map[string]string

func (e envStub) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

func setFunctionVersion(t *testing.T, v string) {
	t.Helper()
	restore := lambdacontext.FunctionVersion
	lambdacontext.FunctionVersion = v
	t.Cleanup(func() {
		lambdacontext.FunctionVersion = restore
	})
}

func TestRouter_Route(t *testing.T) {
	testCases := map[string]struct {
		env envStub
		req Request

		wantedStatus      int
		wantedContentType string
		wantedContains    []string
	}{
		"should answer preflight requests with 204": {
			req:          Request{Method: http.MethodOptions, Path: "/canary"},
			wantedStatus: http.StatusNoContent,
		},
		"should render the home view": {
			req:               Request{Method: http.MethodGet, Path: "/"},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"/canary", "/competition"},
		},
		"should render the health view": {
			req:               Request{Method: http.MethodGet, Path: "/health"},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"healthy"},
		},
		"should render the canary view with the configured weight winning": {
			env: envStub{
				"CANARY_WEIGHTS": `{"5":70}`,
			},
			req: Request{
				Method: http.MethodGet,
				Path:   "/canary",
				Query:  map[string]string{"percent": "10"},
			},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"70%", "badge canary"},
		},
		"should render the canary view from the query percent when no weights match": {
			req: Request{
				Method: http.MethodGet,
				Path:   "/canary",
				Query:  map[string]string{"percent": "100"},
			},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"100%", "badge green"},
		},
		"should render the canary view from the fallback when the query is malformed": {
			env: envStub{
				"CANARY_WEIGHTS":          "not json",
				"CANARY_FALLBACK_PERCENT": "20",
			},
			req: Request{
				Method: http.MethodGet,
				Path:   "/canary",
				Query:  map[string]string{"percent": "abc"},
			},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"20%", "badge canary"},
		},
		"should render the canary view as blue when every source is absent": {
			req:               Request{Method: http.MethodGet, Path: "/canary"},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"0%", "badge blue"},
		},
		"should forward the banner header to the canary view": {
			req: Request{
				Method:  http.MethodGet,
				Path:    "/canary",
				Headers: map[string]string{"x-canary-banner": "rollout starts Friday"},
			},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"rollout starts Friday"},
		},
		"should render the competition form": {
			req:               Request{Method: http.MethodGet, Path: "/competition"},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"<form"},
		},
		"should confirm a form-encoded competition entry": {
			req: Request{
				Method:  http.MethodPost,
				Path:    "/competition",
				Headers: map[string]string{"content-type": "application/x-www-form-urlencoded"},
				Body:    []byte("name=jane&score=88"),
			},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"Entry received", "jane", "88"},
		},
		"should confirm a JSON competition entry": {
			req: Request{
				Method:  http.MethodPost,
				Path:    "/competition",
				Headers: map[string]string{"content-type": "application/json"},
				Body:    []byte(`{"name":"jo","score":91}`),
				JSON:    map[string]interface{}{"name": "jo", "score": float64(91)},
			},
			wantedStatus:      http.StatusOK,
			wantedContentType: "text/html; charset=utf-8",
			wantedContains:    []string{"Entry received", "jo", "91"},
		},
		"should echo a JSON body": {
			req: Request{
				Method:  http.MethodPost,
				Path:    "/echo",
				Headers: map[string]string{"content-type": "application/json"},
				Body:    []byte(`{"a":1}`),
				JSON:    map[string]interface{}{"a": float64(1)},
			},
			wantedStatus:      http.StatusOK,
			wantedContentType: "application/json",
			wantedContains:    []string{`"received":{"a":1}`},
		},
		"should return a JSON 404 for unknown routes": {
			req:               Request{Method: http.MethodGet, Path: "/nope"},
			wantedStatus:      http.StatusNotFound,
			wantedContentType: "application/json",
			wantedContains:    []string{`"error":"Not found"`, `"path":"/nope"`},
		},
		"should return a JSON 404 for a wrong method on a known route": {
			req:               Request{Method: http.MethodDelete, Path: "/canary"},
			wantedStatus:      http.StatusNotFound,
			wantedContentType: "application/json",
		},
	}

	setFunctionVersion(t, "5")
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			env := tc.env
			if env == nil {
				env = envStub{}
			}
			r := New(env)

			got := r.Route(context.Background(), tc.req)

			require.Equal(t, tc.wantedStatus, got.StatusCode)
			require.Equal(t, "*", got.Headers["Access-Control-Allow-Origin"], "every response should carry CORS headers")
			if tc.wantedContentType != "" {
				require.Equal(t, tc.wantedContentType, got.Headers["Content-Type"])
			}
			for _, s := range tc.wantedContains {
				require.Contains(t, got.Body, s)
			}
		})
	}
}

func TestRouter_Route_RecoversPanics(t *testing.T) {
	r := New(envStub{})
	r.newRequestID = func() string {
		panic("boom")
	}

	got := r.Route(context.Background(), Request{Method: http.MethodGet, Path: "/health"})

	require.Equal(t, http.StatusInternalServerError, got.StatusCode)
	require.Contains(t, got.Body, `"error":"Internal Server Error"`)
	require.Contains(t, got.Body, "boom")
}

func TestRouter_Route_UsesLambdaRequestID(t *testing.T) {
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "req-42",
	})

	got := New(envStub{}).Route(ctx, Request{Method: http.MethodGet, Path: "/health"})

	require.Equal(t, http.StatusOK, got.StatusCode)
	require.Contains(t, got.Body, "req-42")
}
