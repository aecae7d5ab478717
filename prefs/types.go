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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are called either side of storing a new value.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. An error returned by the hook prevents the value from
// being stored.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(nv Value, v *atomic.Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value // bool
	def   bool
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return p.store(nv, &p.value)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(bool)
}

// Bool returns the value as a native bool.
func (p *Bool) Bool() bool {
	return p.Get().(bool)
}

// SetDefault sets the value used by Reset() and stores it immediately.
func (p *Bool) SetDefault(v bool) {
	p.def = v
	p.value.Store(v)
}

// Reset sets the value to the default value.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value // int
	def   int
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return p.store(nv, &p.value)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(int)
}

// Int returns the value as a native int.
func (p *Int) Int() int {
	return p.Get().(int)
}

// SetDefault sets the value used by Reset() and stores it immediately.
func (p *Int) SetDefault(v int) {
	p.def = v
	p.value.Store(v)
}

// Reset sets the value to the default value.
func (p *Int) Reset() error {
	return p.Set(p.def)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	value atomic.Value // float64
	def   float64
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.Get().(float64), 'g', -1, 64)
}

// Set new value to Float type. New value can be a float, an int or string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}
	return p.store(nv, &p.value)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(float64)
}

// Float returns the value as a native float64.
func (p *Float) Float() float64 {
	return p.Get().(float64)
}

// SetDefault sets the value used by Reset() and stores it immediately.
func (p *Float) SetDefault(v float64) {
	p.def = v
	p.value.Store(v)
}

// Reset sets the value to the default value.
func (p *Float) Reset() error {
	return p.Set(p.def)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value atomic.Value // string
	def   string
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type. Values of other types are converted with
// the %v verb.
func (p *String) Set(v Value) error {
	return p.store(strings.TrimSpace(fmt.Sprintf("%v", v)), &p.value)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return p.def
	}
	return ov.(string)
}

// SetDefault sets the value used by Reset() and stores it immediately.
func (p *String) SetDefault(v string) {
	p.def = v
	p.value.Store(v)
}

// Reset sets the value to the default value.
func (p *String) Reset() error {
	return p.Set(p.def)
}
