// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"

	"github.com/katalvlaran/pjplot/colour"
	"github.com/katalvlaran/pjplot/result"
)

// AppearanceOptions holds the background and text colours of a plot.
// Values are produced by NewAppearanceOptions or DefaultAppearance and stay
// within the colour enumeration: the setters re-validate.
type AppearanceOptions struct {
	background colour.Colour
	text       colour.Colour
}

// NewAppearanceOptions validates both colours.
// The failure message names the offending field and value.
func NewAppearanceOptions(background, text colour.Colour) result.Result[AppearanceOptions] {
	if !background.Valid() {
		return result.Failf[AppearanceOptions]("appearance options: background colour %v outside enumeration", background)
	}
	if !text.Valid() {
		return result.Failf[AppearanceOptions]("appearance options: text colour %v outside enumeration", text)
	}

	return result.Ok(AppearanceOptions{background: background, text: text})
}

// DefaultAppearance returns white background with black text.
func DefaultAppearance() AppearanceOptions {
	return AppearanceOptions{background: colour.White, text: colour.Black}
}

// Background returns the background colour.
func (a AppearanceOptions) Background() colour.Colour { return a.background }

// Text returns the text colour.
func (a AppearanceOptions) Text() colour.Colour { return a.text }

// SetBackground replaces the background colour.
// Errors: ErrInvalidColour (a is unchanged).
func (a *AppearanceOptions) SetBackground(c colour.Colour) error {
	if !c.Valid() {
		return fmt.Errorf("SetBackground(%v): %w", c, ErrInvalidColour)
	}
	a.background = c

	return nil
}

// SetText replaces the text colour.
// Errors: ErrInvalidColour (a is unchanged).
func (a *AppearanceOptions) SetText(c colour.Colour) error {
	if !c.Valid() {
		return fmt.Errorf("SetText(%v): %w", c, ErrInvalidColour)
	}
	a.text = c

	return nil
}

// String renders "background=WHITE text=BLACK".
func (a AppearanceOptions) String() string {
	return fmt.Sprintf("background=%v text=%v", a.background, a.text)
}

func (a AppearanceOptions) valid() bool { return a.background.Valid() && a.text.Valid() }
