// This file is part of go-cmdlineparse.
//
// Copyright (C) 2016-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option struct and methods.
package option

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// NoShort - Short name value used by options that don't have a short form.
const NoShort rune = 0

// ArgMode - Indicates if an option takes no argument, a required argument or
// an optional argument, like getopt_long's has_arg.
type ArgMode int

// Argument modes
const (
	NoArgument ArgMode = iota
	RequiredArgument
	OptionalArgument
)

func (m ArgMode) String() string {
	switch m {
	case NoArgument:
		return "no_argument"
	case RequiredArgument:
		return "required_argument"
	case OptionalArgument:
		return "optional_argument"
	default:
		return fmt.Sprintf("ArgMode(%d)", int(m))
	}
}

// Handler - Signature for option callbacks.
// The return value indicates if parsing should continue.
type Handler func(optarg string) bool

// Type - Indicates the kind of sink bound to the option.
type Type int

// Option Types
const (
	StringType Type = iota
	FlagType
	HandlerType

	// DescriptionType entries only inject text into the help output and are
	// never matched against the command line.
	DescriptionType
)

func (t Type) String() string {
	switch t {
	case StringType:
		return "string"
	case FlagType:
		return "flag"
	case HandlerType:
		return "handler"
	case DescriptionType:
		return "description"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Option - main object
type Option struct {
	Short     rune    // Short name, NoShort when absent
	Long      string  // Long name, empty when absent
	ArgMode   ArgMode // Argument mode
	OptType   Type    // Option Type
	Called    bool    // Indicates if the option was passed on the command line
	UsedAlias string  // Alias used when the option was called, for example "-s" or "--string"

	// Help
	Help         string // Help text, reproduced verbatim
	TypeStr      string // Argument name used in help
	Header       string // Extra text appended to the help heading line
	Group        string // Help group name
	HelpSynopsis string // Help heading, for example "-s, --string=STRING"

	// Default value written to the string receiver on registration and before
	// every parse.
	Default string

	// Receivers:
	pString *string // receiver for string pointer
	pBool   *bool   // receiver for bool pointer
	handler Handler // receiver for callbacks
}

// New - Returns a new option object.
//
// data must be a *string for StringType, a *bool for FlagType, a Handler (or
// a func(string) bool) for HandlerType and nil for DescriptionType.
func New(short rune, long string, optType Type, data interface{}) *Option {
	opt := &Option{
		Short:   short,
		Long:    long,
		OptType: optType,
	}
	switch optType {
	case StringType:
		opt.ArgMode = RequiredArgument
		opt.TypeStr = "STRING"
		opt.pString, _ = data.(*string)
		if opt.pString != nil {
			opt.Default = *opt.pString
		}
	case FlagType:
		opt.ArgMode = NoArgument
		opt.pBool, _ = data.(*bool)
	case HandlerType:
		opt.ArgMode = NoArgument
		opt.TypeStr = "ARG"
		switch fn := data.(type) {
		case Handler:
			opt.handler = fn
		case func(string) bool:
			opt.handler = fn
		}
	case DescriptionType:
		opt.ArgMode = NoArgument
	}
	opt.Synopsis()
	return opt
}

// Name - Canonical name of the option: the long name if present, else the short name.
func (opt *Option) Name() string {
	if opt.Long != "" {
		return opt.Long
	}
	if opt.Short != NoShort {
		return string(opt.Short)
	}
	return ""
}

// HasShort - Indicates if the option has a short form.
func (opt *Option) HasShort() bool {
	return opt.Short != NoShort
}

// HasLong - Indicates if the option has a long form.
func (opt *Option) HasLong() bool {
	return opt.Long != ""
}

// HasReceiver - Indicates if string and flag options have somewhere to store
// their value. Handlers and descriptions always report true.
func (opt *Option) HasReceiver() bool {
	switch opt.OptType {
	case StringType:
		return opt.pString != nil
	case FlagType:
		return opt.pBool != nil
	default:
		return true
	}
}

// Matchable - Indicates if the option can be matched against command line input.
func (opt *Option) Matchable() bool {
	return opt.OptType != DescriptionType
}

// Synopsis - Builds the help heading of the option.
func (opt *Option) Synopsis() {
	var b strings.Builder
	switch {
	case opt.HasShort() && opt.HasLong():
		fmt.Fprintf(&b, "-%c, --%s", opt.Short, opt.Long)
	case opt.HasShort():
		fmt.Fprintf(&b, "-%c", opt.Short)
	case opt.HasLong():
		// Align with options that have a short form.
		fmt.Fprintf(&b, "    --%s", opt.Long)
	}
	if b.Len() > 0 && opt.TypeStr != "" {
		switch opt.ArgMode {
		case RequiredArgument:
			if opt.HasLong() {
				b.WriteString("=" + opt.TypeStr)
			} else {
				b.WriteString(" " + opt.TypeStr)
			}
		case OptionalArgument:
			if opt.HasLong() {
				b.WriteString("[=" + opt.TypeStr + "]")
			} else {
				b.WriteString("[" + opt.TypeStr + "]")
			}
		}
	}
	opt.HelpSynopsis = b.String()
}

// SetArgMode - Updates the argument mode.
func (opt *Option) SetArgMode(m ArgMode) *Option {
	opt.ArgMode = m
	opt.Synopsis()
	return opt
}

// SetHelp - Updates the help text.
func (opt *Option) SetHelp(s string) *Option {
	opt.Help = s
	return opt
}

// SetTypeStr - Updates the argument name used in help.
// An empty string keeps the default.
func (opt *Option) SetTypeStr(s string) *Option {
	if s == "" {
		return opt
	}
	opt.TypeStr = s
	opt.Synopsis()
	return opt
}

// SetHeader - Updates the extra text shown on the help heading line.
func (opt *Option) SetHeader(s string) *Option {
	opt.Header = s
	return opt
}

// SetGroup - Updates the help group.
func (opt *Option) SetGroup(s string) *Option {
	opt.Group = s
	return opt
}

// SetCalled - Marks the option as called and records the alias used to call it.
func (opt *Option) SetCalled(usedAlias string) *Option {
	opt.Called = true
	opt.UsedAlias = usedAlias
	return opt
}

// Reset - Clears the called markers and restores the receivers to their
// registration time values.
func (opt *Option) Reset() *Option {
	opt.Called = false
	opt.UsedAlias = ""
	switch opt.OptType {
	case StringType:
		*opt.pString = opt.Default
	case FlagType:
		*opt.pBool = false
	}
	return opt
}

// Value - Get untyped option value
func (opt *Option) Value() interface{} {
	switch opt.OptType {
	case StringType:
		return *opt.pString
	case FlagType:
		return *opt.pBool
	default:
		return nil
	}
}

// Save - Saves the data provided into the option.
// It returns false when a handler requests parsing to stop.
func (opt *Option) Save(a ...string) bool {
	arg := ""
	if len(a) > 0 {
		arg = a[0]
	}
	switch opt.OptType {
	case StringType:
		*opt.pString = arg
		Logger.Printf("name: %s, optType: %s, value: %q\n", opt.Name(), opt.OptType, opt.Value())
		return true
	case FlagType:
		// The argument, if any, is ignored.
		*opt.pBool = true
		Logger.Printf("name: %s, optType: %s, value: %v\n", opt.Name(), opt.OptType, opt.Value())
		return true
	case HandlerType:
		Logger.Printf("name: %s, optType: %s, args: %q\n", opt.Name(), opt.OptType, a)
		if opt.handler == nil {
			return true
		}
		return opt.handler(arg)
	default: // DescriptionType
		return true
	}
}
