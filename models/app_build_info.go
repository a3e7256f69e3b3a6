// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build metadata injected with
// -ldflags "-X main.buildVersion=...". It is printed at startup, and its
// version is reported by the health endpoint when none is configured.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// OrPlaceholder returns a copy in which every empty value is replaced with
// placeholder, for display.
func (a AppBuildInfo) OrPlaceholder(placeholder string) AppBuildInfo {
	or := func(s string) string {
		if s == "" {
			return placeholder
		}
		return s
	}

	return NewAppBuildInfo(or(a.buildVersion), or(a.buildDate), or(a.buildCommit))
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }
