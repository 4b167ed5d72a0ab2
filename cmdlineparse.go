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
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DavidGamba/go-cmdlineparse/internal/help"
	"github.com/DavidGamba/go-cmdlineparse/internal/option"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ArgMode - Indicates if an option takes no argument, a required argument or
// an optional argument.
type ArgMode = option.ArgMode

// Argument modes
const (
	NoArgument       = option.NoArgument
	RequiredArgument = option.RequiredArgument
	OptionalArgument = option.OptionalArgument
)

// NoShort - Short name used by options that don't have a short form.
const NoShort = option.NoShort

// Indentation helpers for composing help text.
const (
	HIndent = help.HIndent
	HSpace  = help.HSpace
	DIndent = help.DIndent
)

// Parser - main object.
//
// A Parser holds the option table built by the Add methods and the state of
// the last Parse call.
// It is not safe for concurrent use.
type Parser struct {
	Writer io.Writer // io.Writer used by the default help and version options. Defaults to os.Stdout.

	options  []*option.Option          // registration order
	shortMap map[rune]*option.Option   // matchable options by short name
	longMap  map[string]*option.Option // matchable options by long name

	version      string
	usageUnnamed string
	programName  string
	nameSet      bool
	started      bool

	// Parse state
	unnamedArgs []string
	abortReason AbortReason
	abortOption string
	candidates  []string // long names matched by an ambiguous abbreviation
}

// New returns an empty Parser.
// This is the starting point when using go-cmdlineparse.
// For example:
//
//	cmd := cmdlineparse.New()
func New() *Parser {
	return &Parser{
		Writer:      os.Stdout,
		shortMap:    map[rune]*option.Option{},
		longMap:     map[string]*option.Option{},
		programName: filepath.Base(os.Args[0]),
		unnamedArgs: []string{},
	}
}

// SetVersionString - Sets the version string shown by the version option and at the top of the help.
func (p *Parser) SetVersionString(s string) {
	p.version = s
}

// VersionString - Returns the version string.
func (p *Parser) VersionString() string {
	return p.version
}

// SetUsageUnnamedOpts - Sets the name of the positional arguments shown in
// the usage line, for example "FILES".
func (p *Parser) SetUsageUnnamedOpts(s string) {
	p.usageUnnamed = s
}

// SetProgramName - Sets the program name shown in the usage line.
// When not set, the base name of args[0] from the last Parse call is used.
func (p *Parser) SetProgramName(s string) {
	p.programName = s
	p.nameSet = true
}

// ProgramName - Returns the program name shown in the usage line.
func (p *Parser) ProgramName() string {
	return p.programName
}

// ModifyFn - Function signature for functions that modify an option at registration.
type ModifyFn func(opt *option.Option)

// TypeStr - Sets the argument name shown in help, for example "FILENAME".
func (p *Parser) TypeStr(s string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetTypeStr(s)
	}
}

// Header - Sets extra text appended to the option's help heading line.
func (p *Parser) Header(s string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetHeader(s)
	}
}

// Group - Sets the help group the option is listed under.
func (p *Parser) Group(s string) ModifyFn {
	return func(opt *option.Option) {
		opt.SetGroup(s)
	}
}

// AddString - Registers an option that requires an argument and stores it in s.
// The default type string shown in help is "STRING".
// def is written to s at registration and before every parse.
func (p *Parser) AddString(short rune, long string, s *string, def string, helpText string, fns ...ModifyFn) error {
	opt := option.New(short, long, option.StringType, s)
	opt.Default = def
	opt.SetHelp(helpText)
	err := p.register(opt, fns)
	if err != nil {
		return err
	}
	*s = def
	return nil
}

// AddFlag - Registers an option that takes no argument and sets b to true when seen.
func (p *Parser) AddFlag(short rune, long string, b *bool, helpText string, fns ...ModifyFn) error {
	opt := option.New(short, long, option.FlagType, b)
	opt.SetHelp(helpText)
	err := p.register(opt, fns)
	if err != nil {
		return err
	}
	*b = false
	return nil
}

// AddHandler - Registers an option that calls fn when seen.
// fn receives the option argument, or an empty string when there is none.
// Returning false stops parsing with the OptionHandler abort reason.
func (p *Parser) AddHandler(short rune, long string, mode ArgMode, fn func(optarg string) bool, helpText string, fns ...ModifyFn) error {
	opt := option.New(short, long, option.HandlerType, option.Handler(fn))
	opt.SetArgMode(mode)
	opt.SetHelp(helpText)
	return p.register(opt, fns)
}

// AddDescription - Adds text to the help output.
// The names and mode are only used for display, the entry is never matched
// against the command line and never collides with other options.
// Calls made after Parse are ignored.
func (p *Parser) AddDescription(short rune, long string, mode ArgMode, helpText string, fns ...ModifyFn) {
	if p.started {
		Logger.Printf("description ignored, parsing already started: %q", helpText)
		return
	}
	opt := option.New(short, long, option.DescriptionType, nil)
	opt.SetArgMode(mode)
	opt.SetHelp(helpText)
	for _, fn := range fns {
		fn(opt)
	}
	p.options = append(p.options, opt)
}

// register validates the option names and adds it to the option table.
func (p *Parser) register(opt *option.Option, fns []ModifyFn) error {
	if p.started {
		return fmt.Errorf("%w: '%s'", ErrorParseStarted, opt.Name())
	}
	if !opt.HasShort() && !opt.HasLong() {
		return ErrorNoName
	}
	if !opt.HasReceiver() {
		return fmt.Errorf("%w: '%s'", ErrorNilReceiver, opt.Name())
	}
	if opt.HasShort() && (opt.Short == '-' || opt.Short == '=' || unicode.IsSpace(opt.Short) || !unicode.IsPrint(opt.Short)) {
		return fmt.Errorf("%w: short %q", ErrorInvalidName, opt.Short)
	}
	if opt.HasLong() && (strings.Contains(opt.Long, "=") || strings.HasPrefix(opt.Long, "-")) {
		return fmt.Errorf("%w: long '%s'", ErrorInvalidName, opt.Long)
	}
	if v, ok := p.shortMap[opt.Short]; opt.HasShort() && ok {
		return fmt.Errorf("%w: '-%c' is already defined in option '%s'", ErrorDuplicateShort, opt.Short, v.Name())
	}
	if _, ok := p.longMap[opt.Long]; opt.HasLong() && ok {
		return fmt.Errorf("%w: '--%s'", ErrorDuplicateLong, opt.Long)
	}
	for _, fn := range fns {
		fn(opt)
	}
	if opt.HasShort() {
		p.shortMap[opt.Short] = opt
	}
	if opt.HasLong() {
		p.longMap[opt.Long] = opt
	}
	p.options = append(p.options, opt)
	Logger.Printf("registered option %q: %s", opt.Name(), opt.OptType)
	return nil
}

// UnnamedArgs - Returns the positional arguments of the last parse in input order.
func (p *Parser) UnnamedArgs() []string {
	return p.unnamedArgs
}

// AbortReason - Returns the reason the last parse stopped.
func (p *Parser) AbortReason() AbortReason {
	return p.abortReason
}

// AbortOption - Returns the option token or name associated with the abort.
// Empty when the last parse didn't abort.
func (p *Parser) AbortOption() string {
	return p.abortOption
}

// lookup finds a matchable option by long name or by single character short name.
func (p *Parser) lookup(name string) (*option.Option, bool) {
	if opt, ok := p.longMap[name]; ok {
		return opt, true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		opt, ok := p.shortMap[r]
		return opt, ok
	}
	return nil, false
}

// Called - Indicates if the option was applied during the last parse.
// name can be the long name or the short name of the option.
func (p *Parser) Called(name string) bool {
	if opt, ok := p.lookup(name); ok {
		return opt.Called
	}
	return false
}

// CalledAs - Returns the alias used to call the option during the last
// parse, for example "-s" or "--string".
// Abbreviated long options report the full long name.
func (p *Parser) CalledAs(name string) string {
	if opt, ok := p.lookup(name); ok {
		return opt.UsedAlias
	}
	return ""
}

// Help - Returns the help text: version string, usage line and the option list.
func (p *Parser) Help() string {
	out := help.Version(p.version)
	if out != "" {
		out += "\n"
	}
	out += help.Usage(p.programName, p.usageUnnamed)
	list := help.OptionList(p.options)
	if list != "" {
		out += "\n" + list
	}
	return out
}
