// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmdlineparse

import (
	"fmt"

	"github.com/DavidGamba/go-cmdlineparse/internal/help"
	"github.com/DavidGamba/go-cmdlineparse/text"
)

// AddDefault - Registers the conventional help and version options.
//
//	-h, --help     writes Help() to Writer and stops parsing
//	-V, --version  writes the version string to Writer and stops parsing
//
// Both stop through the OptionHandler abort reason, with AbortOption set to
// "help" or "version".
func (p *Parser) AddDefault() error {
	err := p.AddHandler('h', "help", NoArgument,
		func(string) bool {
			fmt.Fprint(p.Writer, p.Help())
			return false
		},
		DIndent+text.HelpDescription)
	if err != nil {
		return err
	}
	return p.AddHandler('V', "version", NoArgument,
		func(string) bool {
			fmt.Fprint(p.Writer, help.Version(p.version))
			return false
		},
		DIndent+text.VersionDescription)
}
