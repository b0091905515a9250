// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package movegen

import (
	"regexp"
	"strings"

	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

// regexUciMove matches long algebraic move text: <from><to>[promotion].
var regexUciMove = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// GetMoveFromUci generates every legal move on b and returns the one whose
// UCI text matches uciMove, or MoveNone if the text is malformed or names
// no legal move. Used by the adapter to turn a usermove string into an
// encoded Move before handing it to the engine.
func (g *Generator) GetMoveFromUci(b *position.Board, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(strings.TrimSpace(uciMove))
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 && matches[2] != "" {
		promotionPart = strings.ToLower(matches[2])
	}
	want := movePart + promotionPart

	mover := b.SideToMove()
	legal := g.GenerateLegal(b, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.UCI(mover) == want {
			return m
		}
	}
	return MoveNone
}
