// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package canary

// Segment names the rollout phase implied by an effective traffic percentage.
type Segment string

const (
	// SegmentBlue means all traffic stays on the baseline version.
	SegmentBlue Segment = "blue"
	// SegmentCanary means traffic is split between the baseline and the new version.
	SegmentCanary Segment = "canary"
	// SegmentGreen means all traffic goes to the new version.
	SegmentGreen Segment = "green"
)

// ClassifySegment maps an effective percentage to its rollout segment.
// The boundaries are exact: 0 and 100 are never classified as canary.
func ClassifySegment(pct int) Segment {
	switch {
	case pct == 0:
		return SegmentBlue
	case pct >= maxPercent:
		return SegmentGreen
	default:
		return SegmentCanary
	}
}
