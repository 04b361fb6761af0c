// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package canary decides what traffic percentage the dashboard displays
// for the currently executing function version.
package canary

import (
	"strconv"
	"strings"
)

const maxPercent = 100

// Normalize clamps pct into the [0, 100] range.
func Normalize(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > maxPercent {
		return maxPercent
	}
	return pct
}

// NormalizeString coerces raw into a base-10 integer and clamps it into
// [0, 100]. Values that don't parse are treated as 0.
func NormalizeString(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return Normalize(n)
}
