// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the dashboard's runtime settings from the process environment.
package config

//go:generate mockgen -source=config.go -package=mocks -destination=mocks/mock_config.go

import (
	"os"
	"strings"
)

const (
	weightsEnvVar      = "CANARY_WEIGHTS"
	fallbackEnvVar     = "CANARY_FALLBACK_PERCENT"
	bannerHeaderEnvVar = "CANARY_BANNER_HEADER"

	defaultBannerHeader = "x-canary-banner"
)

// Environment is the subset of the process environment the dashboard reads.
type Environment interface {
	LookupEnv(key string) (value string, ok bool)
}

type osEnvironment struct{}

func (osEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// NewEnvironment returns an Environment backed by the process environment.
func NewEnvironment() Environment {
	return osEnvironment{}
}

// Settings carries the raw operator-supplied configuration for one
// invocation. Values are not validated here; malformed input is handled
// fail-open downstream.
type Settings struct {
	// RawWeights is the serialized version to percentage map.
	RawWeights string
	// FallbackPercent is the raw default percentage applied when neither the
	// weight map nor the request supplies one.
	FallbackPercent string
	// BannerHeader is the lower-cased name of the request header whose value
	// is forwarded to the views for display.
	BannerHeader string
}

// Load reads the settings fresh from env. It is called once per invocation
// so configuration changes between invocations are picked up without a
// restart.
func Load(env Environment) Settings {
	s := Settings{BannerHeader: defaultBannerHeader}
	if v, ok := env.LookupEnv(weightsEnvVar); ok {
		s.RawWeights = v
	}
	if v, ok := env.LookupEnv(fallbackEnvVar); ok {
		s.FallbackPercent = v
	}
	if v, ok := env.LookupEnv(bannerHeaderEnvVar); ok && v != "" {
		s.BannerHeader = strings.ToLower(v)
	}
	return s
}
