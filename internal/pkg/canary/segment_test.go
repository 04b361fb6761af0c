// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package canary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySegment(t *testing.T) {
	testCases := map[string]struct {
		pct    int
		wanted Segment
	}{
		"should classify 0 as blue": {
			pct:    0,
			wanted: SegmentBlue,
		},
		"should classify 1 as canary": {
			pct:    1,
			wanted: SegmentCanary,
		},
		"should classify 50 as canary": {
			pct:    50,
			wanted: SegmentCanary,
		},
		"should classify 99 as canary": {
			pct:    99,
			wanted: SegmentCanary,
		},
		"should classify 100 as green": {
			pct:    100,
			wanted: SegmentGreen,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.wanted, ClassifySegment(tc.pct))
		})
	}
}

func TestClassifySegment_AfterNormalize(t *testing.T) {
	require.Equal(t, SegmentGreen, ClassifySegment(Normalize(150)))
	require.Equal(t, SegmentBlue, ClassifySegment(Normalize(-20)))
}
