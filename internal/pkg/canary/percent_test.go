// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package canary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := map[string]struct {
		in     int
		wanted int
	}{
		"should return the value unchanged when it is already in range": {
			in:     42,
			wanted: 42,
		},
		"should keep the lower boundary": {
			in:     0,
			wanted: 0,
		},
		"should keep the upper boundary": {
			in:     100,
			wanted: 100,
		},
		"should clamp negative values to 0": {
			in:     -5,
			wanted: 0,
		},
		"should clamp values above 100": {
			in:     150,
			wanted: 100,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := Normalize(tc.in)

			require.Equal(t, tc.wanted, got)
			require.Equal(t, got, Normalize(got), "Normalize should be idempotent")
		})
	}
}

func TestNormalize_Range(t *testing.T) {
	for n := -200; n <= 200; n++ {
		got := Normalize(n)
		require.GreaterOrEqual(t, got, 0)
		require.LessOrEqual(t, got, 100)
		if n >= 0 && n <= 100 {
			require.Equal(t, n, got)
		}
	}
}

func TestNormalizeString(t *testing.T) {
	testCases := map[string]struct {
		in     string
		wanted int
	}{
		"should parse a plain integer": {
			in:     "30",
			wanted: 30,
		},
		"should tolerate surrounding whitespace": {
			in:     " 30\n",
			wanted: 30,
		},
		"should treat the empty string as 0": {
			in:     "",
			wanted: 0,
		},
		"should treat non-numeric input as 0": {
			in:     "abc",
			wanted: 0,
		},
		"should treat fractional input as 0": {
			in:     "12.5",
			wanted: 0,
		},
		"should clamp out-of-range input": {
			in:     "500",
			wanted: 100,
		},
		"should clamp negative input": {
			in:     "-10",
			wanted: 0,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, NormalizeString(tc.in))
		})
	}
}
