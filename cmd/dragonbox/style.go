// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(12)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7FF"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))
)

// A printer renders verbose output, styled only when writing to a terminal.
type printer struct {
	styled bool
}

func (p printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p printer) header(text string) string { return p.render(headerStyle, text) }
func (p printer) field(text string) string { return p.render(fieldStyle, text) }
func (p printer) result(text string) string { return p.render(resultStyle, text) }

func (p printer) label(text string) string {
	if !p.styled {
		return fmt.Sprintf("%-12s", text)
	}
	return labelStyle.Render(text)
}
