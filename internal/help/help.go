// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - internal help text layout.
//
// Help text is never wrapped, every option's help text is reproduced
// verbatim under its heading.
package help

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-cmdlineparse/internal/option"
)

// Indentation used when composing help text.
const (
	HIndent = "  "   // Indent of an option heading
	HSpace  = "   "  // Separator between a heading and its header text
	DIndent = "    " // Indent of option help text
)

// UsageHeader - Title of the usage line.
var UsageHeader = "Usage"

// Version - Returns the version string terminated by a newline, or an empty string.
func Version(version string) string {
	if version == "" {
		return ""
	}
	if !strings.HasSuffix(version, "\n") {
		version += "\n"
	}
	return version
}

// Usage - Returns the usage line.
// unnamed describes the positional arguments, for example "FILES".
func Usage(programName, unnamed string) string {
	out := fmt.Sprintf("%s: %s [options]", UsageHeader, programName)
	if unnamed != "" {
		out += " " + unnamed
	}
	return out + "\n"
}

// Entry - Returns the heading and help text of a single option.
func Entry(opt *option.Option) string {
	out := ""
	switch {
	case opt.HelpSynopsis != "":
		out += HIndent + opt.HelpSynopsis + opt.Header + "\n"
	case opt.Header != "":
		out += opt.Header + "\n"
	}
	if opt.Help != "" {
		out += opt.Help
		if !strings.HasSuffix(opt.Help, "\n") {
			out += "\n"
		}
	}
	return out
}

// OptionList - Return the options grouped by their help group.
// Options without a group go first, then each group in order of first
// appearance under a "<group>:" title. Registration order is kept within a
// group.
func OptionList(options []*option.Option) string {
	groups := []string{}
	byGroup := map[string][]*option.Option{}
	for _, opt := range options {
		if _, ok := byGroup[opt.Group]; !ok && opt.Group != "" {
			groups = append(groups, opt.Group)
		}
		byGroup[opt.Group] = append(byGroup[opt.Group], opt)
	}
	out := ""
	for _, opt := range byGroup[""] {
		out += Entry(opt)
	}
	for _, group := range groups {
		if out != "" {
			out += "\n"
		}
		out += group + ":\n"
		for _, opt := range byGroup[group] {
			out += Entry(opt)
		}
	}
	return out
}
