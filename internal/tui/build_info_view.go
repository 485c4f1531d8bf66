// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/secret-decoder/models"
	"github.com/charmbracelet/lipgloss"
)

// renderBuildInfoWindow shows the build metadata as two aligned columns.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	labels := []string{"Application", "Version", "Built", "Commit"}
	values := []string{
		"secret-client",
		valueOrNA(info.BuildVersion()),
		valueOrNA(info.BuildDate()),
		valueOrNA(info.BuildCommit()),
	}

	table := lipgloss.JoinHorizontal(lipgloss.Top,
		helpStyle.PaddingRight(2).Render(strings.Join(labels, "\n")),
		strings.Join(values, "\n"),
	)

	return overlayBoxStyle.Render(titleStyle.Render("About") + "\n\n" + table + "\n\n" + helpStyle.Render("esc: close"))
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return "N/A"
}
