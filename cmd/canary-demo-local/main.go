// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main serves the canary demo dashboard on localhost for development.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/aws-samples/lambda-canary-demo/internal/pkg/config"
	"github.com/aws-samples/lambda-canary-demo/internal/pkg/router"
	"github.com/aws-samples/lambda-canary-demo/internal/pkg/term/log"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	opts := &serveOpts{
		fs: afero.NewOsFs(),
	}
	cmd := &cobra.Command{
		Use:   "canary-demo-local",
		Short: "Serve the canary demo dashboard on localhost.",
		Example: `
  Serve on the default port with a 20% fallback weight.
  $ CANARY_FALLBACK_PERCENT=20 canary-demo-local

  Serve with weights from a file.
  $ canary-demo-local --weights-file canary.yml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Execute()
		},
	}
	cmd.Flags().IntVarP(&opts.port, "port", "p", 8080, "Port to listen on.")
	cmd.Flags().StringVar(&opts.weightsFile, "weights-file", "", "Optional path to a YAML file with version weights.")
	return cmd
}

type serveOpts struct {
	port        int
	weightsFile string

	fs afero.Fs
}

// Execute starts the local server with the same routing path the Lambda
// binary uses. Environment variables win over .env; the weights file wins
// over both.
func (o *serveOpts) Execute() error {
	if err := godotenv.Load(); err == nil {
		log.Debugf("Loaded environment overrides from .env\n")
	}
	env := config.NewEnvironment()
	if o.weightsFile != "" {
		overrides, err := loadOverrides(o.fs, o.weightsFile)
		if err != nil {
			return err
		}
		env = overrideEnvironment{
			overrides: overrides,
			base:      env,
		}
	}

	rt := router.New(env)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		resp := rt.Route(r.Context(), router.FromHTTP(r))
		resp.Write(w)
		log.Debugf("%s %s %d\n", r.Method, r.URL.Path, resp.StatusCode)
	})

	addr := fmt.Sprintf("localhost:%d", o.port)
	log.Successf("Serving the canary demo on http://%s\n", addr)
	log.Infoln("Press Ctrl+C to stop.")
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("serve on %s: %w", addr, err)
	}
	return nil
}

// overrideEnvironment answers lookups from the weights file before falling
// back to the process environment.
type overrideEnvironment struct {
	overrides map[string]string
	base      config.Environment
}

func (e overrideEnvironment) LookupEnv(key string) (string, bool) {
	if v, ok := e.overrides[key]; ok {
		return v, true
	}
	return e.base.LookupEnv(key)
}
