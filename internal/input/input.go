// Package input turns configured key names into raylib key polling that feeds the
// command registry, so demos only ever see command lines.
package input

import (
	"errors"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"demo-scenes/internal/config"
	"demo-scenes/internal/controls"
	"demo-scenes/internal/logger"
)

// ErrUnknownKey is returned for a key name with no raylib key behind it.
var ErrUnknownKey = errors.New("unknown key")

var keyNames = map[string]int32{
	"UP":        rl.KeyUp,
	"DOWN":      rl.KeyDown,
	"LEFT":      rl.KeyLeft,
	"RIGHT":     rl.KeyRight,
	"SPACE":     rl.KeySpace,
	"TAB":       rl.KeyTab,
	"PAGE_UP":   rl.KeyPageUp,
	"PAGE_DOWN": rl.KeyPageDown,
	"HOME":      rl.KeyHome,
	"END":       rl.KeyEnd,
	"MINUS":     rl.KeyMinus,
	"EQUAL":     rl.KeyEqual,
	"ZERO":      rl.KeyZero,
	"ONE":       rl.KeyOne,
	"TWO":       rl.KeyTwo,
	"THREE":     rl.KeyThree,
	"FOUR":      rl.KeyFour,
	"FIVE":      rl.KeyFive,
	"SIX":       rl.KeySix,
	"SEVEN":     rl.KeySeven,
	"EIGHT":     rl.KeyEight,
	"NINE":      rl.KeyNine,
	"F1":        rl.KeyF1,
	"F2":        rl.KeyF2,
	"F3":        rl.KeyF3,
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		keyNames[string(c)] = rl.KeyA + int32(c-'A')
	}
}

// Lookup returns the raylib key code for name (case-insensitive).
func Lookup(name string) (int32, bool) {
	k, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// Keymap builds a keymap from configured bindings. Unknown key names are reported
// together; the rest are still bound.
func Keymap(keys []config.Key) (controls.Keymap, error) {
	var km controls.Keymap
	var errs []error
	for _, k := range keys {
		code, ok := Lookup(k.Key)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q (%s)", ErrUnknownKey, k.Key, k.Line))
			continue
		}
		if k.Held {
			km.BindHeld(code, k.Line)
		} else {
			km.Bind(code, k.Line)
		}
	}
	return km, errors.Join(errs...)
}

// Poller fires bound command lines from the keyboard once per frame.
type Poller struct {
	km  controls.Keymap
	reg *controls.Registry
	log *logger.Logger
	// Paused reports whether polling should be skipped, e.g. while the command bar has focus.
	Paused func() bool
}

// NewPoller returns a poller dispatching km through reg and logging failures to log.
func NewPoller(km controls.Keymap, reg *controls.Registry, log *logger.Logger) *Poller {
	return &Poller{km: km, reg: reg, log: log}
}

// Update polls the keyboard. Call once per frame before the demo steps.
func (p *Poller) Update() {
	if p.Paused != nil && p.Paused() {
		return
	}
	for _, err := range p.km.Apply(p.reg, rl.IsKeyPressed, rl.IsKeyDown) {
		p.log.Log(err.Error())
	}
}
