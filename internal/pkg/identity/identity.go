// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package identity describes the function instance serving the current request.
package identity

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go/aws/arn"
)

const functionMarker = ":function:"

// LatestVersion is the sentinel the Lambda runtime reports for an
// unpublished function version.
const LatestVersion = "$LATEST"

// Identity holds the invocation metadata of the executing function instance.
// It is derived once per request and immutable afterwards.
type Identity struct {
	FunctionName string
	Version      string
	Alias        string
	Region       string
	Account      string
}

// ParseQualifier extracts the alias or version qualifier from a function
// invocation identifier such as
// "arn:aws:lambda:us-east-1:111111111111:function:demo:prod".
// The second return value is false when no qualifier is available: the
// identifier is empty, it has no ":function:" marker, or nothing follows the
// function name. Qualifier content is not validated.
func ParseQualifier(identifier string) (string, bool) {
	if identifier == "" {
		return "", false
	}
	_, rest, found := strings.Cut(identifier, functionMarker)
	if !found {
		return "", false
	}
	parts := strings.Split(rest, ":")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// FromContext captures the invocation identity for the current request from
// the Lambda context and the runtime-provided metadata. Missing or
// unparseable metadata yields zero-valued fields, never an error.
func FromContext(ctx context.Context) Identity {
	id := Identity{
		FunctionName: lambdacontext.FunctionName,
		Version:      lambdacontext.FunctionVersion,
	}
	if id.Version == "" {
		id.Version = LatestVersion
	}
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return id
	}
	if alias, ok := ParseQualifier(lc.InvokedFunctionArn); ok {
		id.Alias = alias
	}
	parsed, err := arn.Parse(lc.InvokedFunctionArn)
	if err != nil {
		return id
	}
	id.Region = parsed.Region
	id.Account = parsed.AccountID
	if id.FunctionName == "" {
		id.FunctionName = functionName(parsed.Resource)
	}
	return id
}

// functionName pulls the bare function name out of an ARN resource segment
// shaped like "function:name" or "function:name:qualifier".
func functionName(resource string) string {
	parts := strings.Split(resource, ":")
	if len(parts) < 2 || parts[0] != "function" {
		return ""
	}
	return parts[1]
}
