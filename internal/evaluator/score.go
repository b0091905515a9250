// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package evaluator

// Score carries a positional term's value in both game phases; the
// evaluator blends MidGame and EndGame by the position's game phase
// factor once every term has been summed.
type Score struct {
	MidGame int16
	EndGame int16
}

// Add accumulates a into the receiver.
func (s *Score) Add(a Score) {
	s.MidGame += a.MidGame
	s.EndGame += a.EndGame
}

// Sub removes a from the receiver.
func (s *Score) Sub(a Score) {
	s.MidGame -= a.MidGame
	s.EndGame -= a.EndGame
}

// Interpolate blends MidGame and EndGame by gpf, the game phase factor in
// [0,1] where 1 is the full starting material and 0 is a bare endgame.
func (s Score) Interpolate(gpf float64) int {
	return int(float64(s.MidGame)*gpf + float64(s.EndGame)*(1.0-gpf))
}
