// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package views renders the static HTML files under the "templates/" directory.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer parses and executes the files under the "templates/" directory.
// All user-controlled values flow through html/template's contextual escaping.
type Renderer struct {
	fs embed.FS
}

// New returns a Renderer for the embedded templates.
func New() *Renderer {
	return &Renderer{
		fs: templateFS,
	}
}

// Parse parses the template under "templates/{name}" with the specified data
// object and returns its content.
func (r *Renderer) Parse(name string, data interface{}) (string, error) {
	tpl, err := template.ParseFS(r.fs, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("execute template %s with data %v: %w", name, data, err)
	}
	return buf.String(), nil
}

// HomeData is the data needed to render the home view.
type HomeData struct {
	Paths   []string
	Version string
}

// Home renders the landing page listing the available demo paths.
func (r *Renderer) Home(data HomeData) (string, error) {
	return r.Parse("home.html", data)
}

// HealthData is the data needed to render the health view.
type HealthData struct {
	OK           bool
	Time         string
	Uptime       string
	FunctionName string
	Version      string
	RequestID    string
}

// Health renders the health view.
func (r *Renderer) Health(data HealthData) (string, error) {
	return r.Parse("health.html", data)
}

// CanaryData is the data needed to render the canary view. Percent and
// Segment are the resolved values; Requested echoes the raw query parameter
// and Banner the forwarded header value, both display-only.
type CanaryData struct {
	Percent   int
	Segment   string
	Weights   map[string]int
	Version   string
	Alias     string
	Region    string
	Account   string
	Requested string
	Banner    string
}

// Canary renders the canary rollout view.
func (r *Renderer) Canary(data CanaryData) (string, error) {
	return r.Parse("canary.html", data)
}

// CompetitionData is the data needed to render the competition view.
type CompetitionData struct {
	Submitted bool
	Name      string
	Score     string
}

// Competition renders the competition entry form, or the submission
// confirmation when an entry was posted.
func (r *Renderer) Competition(data CompetitionData) (string, error) {
	return r.Parse("competition.html", data)
}
