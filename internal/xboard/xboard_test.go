// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package xboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/position"
)

func init() {
	config.Setup()
}

func TestProtoverSendsFeatureLine(t *testing.T) {
	h := NewHandler()
	out := h.Command("protover 2")
	assert.Contains(t, out, "feature")
	assert.Contains(t, out, "usermove=1")
	assert.Contains(t, out, "done=1")
}

func TestSetboardRejectsMalformedFEN(t *testing.T) {
	h := NewHandler()
	out := h.Command("setboard not a fen")
	assert.Contains(t, out, "Illegal position")
}

func TestUsermoveAppliesLegalMove(t *testing.T) {
	h := NewHandler()
	h.forceMode.Store(true) // stop the engine from replying with its own move
	out := h.Command("usermove e2e4")
	assert.Empty(t, out)
}

func TestUsermoveRejectsIllegalMove(t *testing.T) {
	h := NewHandler()
	h.forceMode.Store(true)
	out := h.Command("usermove e2e5")
	assert.Contains(t, out, "Illegal move")
}

func TestForceCommandStopsEngineReplying(t *testing.T) {
	h := NewHandler()
	h.Command("force")
	out := h.Command("usermove e2e4")
	assert.Empty(t, out)
	assert.True(t, h.forceMode.Load())
}

func TestPingRepliesWithMatchingPong(t *testing.T) {
	h := NewHandler()
	out := h.Command("ping 7")
	assert.Equal(t, "pong 7\n", out)
}

func TestGoFindsAndAnnouncesMateInOne(t *testing.T) {
	h := NewHandler()
	h.Command("setboard 6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	out := h.Command("go")
	assert.True(t, strings.HasPrefix(out, "move "))
}

func TestUndoWithoutAppliedMoveReportsError(t *testing.T) {
	h := NewHandler()
	out := h.Command("undo")
	assert.Contains(t, out, "Error")
}

func TestUndoReversesLastUsermove(t *testing.T) {
	h := NewHandler()
	h.forceMode.Store(true)
	h.Command("usermove e2e4")
	assert.NotEqual(t, position.StartFEN, h.eng.Board().FEN())
	h.Command("undo")
	assert.Equal(t, position.StartFEN, h.eng.Board().FEN())
}

func TestUnknownCommandReportsError(t *testing.T) {
	h := NewHandler()
	out := h.Command("frobnicate")
	assert.Contains(t, out, "Error")
}
