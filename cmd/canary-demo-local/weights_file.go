// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// weightsFile is the schema of the optional --weights-file document:
//
//	weights:
//	  "4": 30
//	  "5": 70
//	fallbackPercent: 20
//	bannerHeader: x-release-banner
type weightsFile struct {
	Weights         map[string]int `yaml:"weights"`
	FallbackPercent *int           `yaml:"fallbackPercent"`
	BannerHeader    string         `yaml:"bannerHeader"`
}

// loadOverrides reads the weights file and converts it into the environment
// variables the dashboard reads, so local runs exercise the exact parsing
// path the Lambda deployment uses.
func loadOverrides(fs afero.Fs, path string) (map[string]string, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read weights file %s: %w", path, err)
	}
	var file weightsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unmarshal weights file %s: %w", path, err)
	}

	overrides := map[string]string{}
	if len(file.Weights) > 0 {
		serialized, err := json.Marshal(file.Weights)
		if err != nil {
			return nil, fmt.Errorf("serialize weights from %s: %w", path, err)
		}
		overrides["CANARY_WEIGHTS"] = string(serialized)
	}
	if file.FallbackPercent != nil {
		overrides["CANARY_FALLBACK_PERCENT"] = strconv.Itoa(*file.FallbackPercent)
	}
	if file.BannerHeader != "" {
		overrides["CANARY_BANNER_HEADER"] = file.BannerHeader
	}
	return overrides, nil
}
