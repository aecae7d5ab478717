// This file is part of Checkergen.
//
// Checkergen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Checkergen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Checkergen.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if sub-modes were given then Mode() is the selected
	// mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned alongside this result
	ParseError
)

// Modes handles the command line one mode at a time.
type Modes struct {
	// help is written here. help is discarded if Output is nil
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	subModes []string
	path     []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs starts parsing a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new set of flags. Arguments consumed by the previous call
// to Parse() are not seen again.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// AdditionalHelp is shown after the list of flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes to the modes that may follow the current flags. The first
// sub-mode is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// Parse the flags of the current mode. If sub-modes have been added then the
// next argument selects the mode. Help is written to Output if requested.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// the flag set stops at the first argument that is not a flag
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, s := range md.subModes {
			if s == arg {
				mode = s
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that follow the flags and the selected
// mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// option is a flag.Value that passes the value to a set function.
type option struct {
	value  string
	isBool bool
	set    func(string) error
}

func (o *option) String() string {
	if o == nil {
		return ""
	}
	return o.value
}

func (o *option) Set(s string) error {
	if err := o.set(s); err != nil {
		return err
	}
	o.value = s
	return nil
}

// IsBoolFlag allows boolean options to be given without a value.
func (o *option) IsBoolFlag() bool {
	return o.isBool
}

// AddOption for the next call to Parse(). The value is the current value of
// the option and is shown as the default in help messages. A boolean option
// may be given without a value, in which case the set function receives
// "true".
func (md *Modes) AddOption(name string, value string, isBool bool, usage string, set func(string) error) {
	md.flags.Var(&option{value: value, isBool: isBool, set: set}, name, usage)
}

// Visit calls fn for every flag set by the most recent call to Parse().
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
