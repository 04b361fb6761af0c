// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package canary

import (
	"strconv"
	"strings"
)

// Inputs holds the already-extracted values Resolve decides over.
// RequestedPercent and FallbackPercent carry raw text from the query string
// and the static configuration; empty or non-numeric values are skipped.
type Inputs struct {
	// Version identifies the currently executing function version.
	Version string
	// Weights is the operator-supplied version to percentage map.
	Weights WeightMap
	// RequestedPercent is the raw value of the request's percent parameter.
	RequestedPercent string
	// FallbackPercent is the raw statically configured default.
	FallbackPercent string
}

// Resolve returns the effective traffic percentage for one request.
// Sources are tried in order and the first one that yields a value wins,
// with no blending: the weight map entry for the current version, then the
// request-supplied percent, then the configured fallback, then 0.
// Whichever source wins, the value is normalized into [0, 100] exactly once.
func Resolve(in Inputs) int {
	sources := []func() (int, bool){
		in.versionWeight,
		in.requestedPercent,
		in.fallbackPercent,
	}
	for _, source := range sources {
		if pct, ok := source(); ok {
			return Normalize(pct)
		}
	}
	return 0
}

// versionWeight reports the weight mapped to the current version. A version
// explicitly mapped to 0 counts as present and wins the precedence chain.
func (in Inputs) versionWeight() (int, bool) {
	pct, ok := in.Weights[in.Version]
	return pct, ok
}

func (in Inputs) requestedPercent() (int, bool) {
	return parsePercent(in.RequestedPercent)
}

func (in Inputs) fallbackPercent() (int, bool) {
	return parsePercent(in.FallbackPercent)
}

func parsePercent(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
