// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information
package version

import (
	"fmt"
	"runtime"
)

// Version is this binary's version. Set with linker flags when building the demo.
var Version string

// Platform is the target the binary was built for.
var Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
