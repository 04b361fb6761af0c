// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package canary

import (
	"encoding/json"
	"strings"
)

// WeightMap maps a function version to the traffic percentage operators want
// shifted to it. Values are not validated on load; Resolve normalizes them.
type WeightMap map[string]int

// ParseWeightMap parses an operator-supplied JSON object of version to
// percentage, e.g. `{"4":50,"5":50}`. A missing, blank, or malformed value
// yields an empty map: a broken configuration string disables the weight
// feature for the request instead of failing it.
func ParseWeightMap(raw string) WeightMap {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return WeightMap{}
	}
	var m WeightMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return WeightMap{}
	}
	if m == nil {
		// The literal "null" decodes without error.
		return WeightMap{}
	}
	return m
}
