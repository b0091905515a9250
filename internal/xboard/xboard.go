// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

// Package xboard implements the XBoard/CECP line protocol adapter: it
// reads text commands from an input stream, converts them to calls on an
// internal/engine.Engine, and writes XBoard-formatted replies to an
// output stream. It is deliberately thin — line framing, clock
// bookkeeping and FEN/move text conversion are its only job; everything
// chess-related is delegated to the engine.
package xboard

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	goLogging "github.com/op/go-logging"

	"github.com/caissa-dev/caissa/internal/config"
	"github.com/caissa-dev/caissa/internal/engine"
	myLogging "github.com/caissa-dev/caissa/internal/logging"
	"github.com/caissa-dev/caissa/internal/position"
	. "github.com/caissa-dev/caissa/internal/types"
)

// engineVersion is a plain local constant rather than a dedicated
// version package: the teacher's build-time-generated version package
// wasn't part of the retrieved sources, and this adapter only ever uses
// it for one banner line.
const engineVersion = "0.1"

// inboundQueueSize bounds the single-consumer channel the engine polls
// while Think is running; the protocol is interactive so the adapter
// never blocks trying to deliver a message: when the queue is full it
// drops the new line with a logged warning.
const inboundQueueSize = 64

// Handler reads XBoard/CECP commands from InIo and writes responses to
// OutIo, driving a single internal/engine.Engine. Create with NewHandler;
// InIo/OutIo may be replaced (as the teacher's UCI handler allows) to
// redirect from stdin/stdout for tests.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	eng     *engine.Engine
	inbound chan string

	log      *goLogging.Logger
	protoLog *goLogging.Logger

	forceMode atomic.Bool
	thinking  atomic.Bool
	wg        sync.WaitGroup

	// deferredMu guards deferred, a single pending command line queued by
	// dispatch while the engine is thinking and replayed once it stops —
	// e.g. "undo"/"remove"/"force"/"result"/"quit" abort the search but
	// must still be applied to the board afterward, per the concurrency
	// model's "abort, then return, then mutate" sequencing rule.
	deferredMu sync.Mutex
	deferred   string

	// clock bookkeeping, all in centiseconds as CECP's "time"/"otim" use.
	myTimeCentis  int
	incrementSecs int
	movesToGo     int
}

// NewHandler constructs a Handler reading stdin and writing stdout, with
// a fresh engine set to the standard starting position.
func NewHandler() *Handler {
	h := &Handler{
		InIo:      bufio.NewScanner(os.Stdin),
		OutIo:     bufio.NewWriter(os.Stdout),
		eng:       engine.New(),
		inbound:   make(chan string, inboundQueueSize),
		log:       myLogging.GetLog(),
		protoLog:  myLogging.GetXboardLog(),
		movesToGo: 30,
	}
	h.InIo.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	_ = h.eng.Init(position.StartFEN, h.inbound)
	h.log.Infof("xboard: %s ready", h.identify())
	return h
}

// Loop reads and dispatches commands until "quit" is received or the
// input stream is exhausted.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.dispatch(h.InIo.Text()) {
			return
		}
	}
	h.wg.Wait()
}

// Command handles a single protocol line synchronously and returns
// whatever the handler wrote in response — used by tests, mirroring the
// teacher UCI handler's Command method.
func (h *Handler) Command(line string) string {
	tmp := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.dispatch(line)
	h.wg.Wait()
	_ = h.OutIo.Flush()
	h.OutIo = tmp
	return buf.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// dispatch handles one line of input, returning true if it was "quit".
// While the engine is thinking, most commands are forwarded to the
// engine's inbound queue (so Think's poll can react to abort-inducing
// ones) and deferred; a handful that are harmless mid-think (clock
// updates, ping, draw offers) are still processed immediately.
func (h *Handler) dispatch(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.protoLog.Infof("<< %s", line)
	tokens := regexWhiteSpace.Split(line, -1)
	cmd := tokens[0]

	if h.thinking.Load() {
		select {
		case h.inbound <- line:
		default:
			h.log.Warningf("xboard: inbound queue full, dropping %q", line)
		}
		switch cmd {
		case "ping", "time", "otim", "draw", "?":
			// safe to also handle immediately below
		default:
			h.deferredMu.Lock()
			h.deferred = line
			h.deferredMu.Unlock()
			return false
		}
	}

	switch cmd {
	case "quit":
		h.quitCommand()
		return true
	case "xboard":
		// no reply required; xboard mode is the only mode this adapter speaks.
	case "protover":
		h.protoverCommand()
	case "new":
		h.newCommand()
	case "setboard":
		h.setboardCommand(line)
	case "usermove":
		h.usermoveCommand(tokens)
	case "force":
		h.forceCommand()
	case "go":
		h.goCommand()
	case "?":
		h.questionMarkCommand()
	case "undo":
		h.undoCommand()
	case "remove":
		h.removeCommand()
	case "ping":
		h.pingCommand(tokens)
	case "result":
		h.resultCommand()
	case "draw":
		h.drawCommand()
	case "time":
		h.timeCommand(tokens)
	case "otim":
		// opponent's clock; this engine never consults it. Accepted and ignored.
	case "level":
		h.levelCommand(tokens)
	case "st":
		h.stCommand(tokens)
	case "post":
		config.Settings.Protocol.PostThinking = true
	case "nopost":
		config.Settings.Protocol.PostThinking = false
	case "random", "hard", "easy", "computer", "name", "rating", "accepted", "rejected":
		// acknowledged no-ops: these tune GUI-side behavior or identification
		// this engine doesn't vary by.
	case "option":
		h.optionCommand(tokens)
	default:
		if isMoveText(cmd) {
			// some GUIs send bare move text instead of "usermove <move>".
			h.usermoveCommand([]string{"usermove", cmd})
			break
		}
		h.send(fmt.Sprintf("Error (unknown command): %s", line))
	}
	return false
}

// quitCommand terminates the process, matching both CECP and UCI
// convention that "quit" means the GUI is done with this engine instance.
// A deferred "quit" (queued while thinking, replayed once the search
// stops) reaches here exactly the same way a live one does.
func (h *Handler) quitCommand() {
	_ = h.OutIo.Flush()
	os.Exit(0)
}

func (h *Handler) protoverCommand() {
	name := config.Settings.Protocol.MyName
	h.send(fmt.Sprintf(
		"feature ping=1 setboard=1 playother=0 san=0 usermove=1 time=1 draw=1 sigint=0 sigterm=0 reuse=1 analyze=0 myname=%q colors=0 done=1",
		name))
}

func (h *Handler) newCommand() {
	h.forceMode.Store(false)
	h.eng.Clear()
}

func (h *Handler) setboardCommand(line string) {
	fen := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "setboard"))
	if err := h.eng.SetPosition(fen); err != nil {
		h.send(fmt.Sprintf("tellusererror Illegal position: %v", err))
	}
}

func (h *Handler) usermoveCommand(tokens []string) {
	if len(tokens) < 2 {
		h.send("Illegal move (no move given)")
		return
	}
	m := h.eng.MoveFromUCI(tokens[1])
	if m == MoveNone || h.eng.MakeMove(m) != engine.StatusOK {
		h.send(fmt.Sprintf("Illegal move: %s", tokens[1]))
		return
	}
	if over, desc := h.eng.GameResult(); over {
		h.send(desc)
		return
	}
	if !h.forceMode.Load() {
		h.startThinking()
	}
}

func (h *Handler) forceCommand() {
	h.forceMode.Store(true)
}

func (h *Handler) goCommand() {
	h.forceMode.Store(false)
	h.startThinking()
}

// questionMarkCommand is a no-op: "?" while thinking was already
// forwarded to the engine's inbound queue by dispatch before this switch
// ran, and "?" while idle has nothing to interrupt.
func (h *Handler) questionMarkCommand() {}

func (h *Handler) undoCommand() {
	if h.eng.UnmakeMove() != engine.StatusOK {
		h.send("Error (nothing to undo): undo")
	}
}

func (h *Handler) removeCommand() {
	if h.eng.UnmakeMove() != engine.StatusOK || h.eng.UnmakeMove() != engine.StatusOK {
		h.send("Error (nothing to remove): remove")
	}
}

func (h *Handler) pingCommand(tokens []string) {
	if len(tokens) > 1 {
		h.send("pong " + tokens[1])
	} else {
		h.send("pong")
	}
}

func (h *Handler) resultCommand() {
	h.forceMode.Store(true)
}

func (h *Handler) drawCommand() {
	if over, _ := h.eng.GameResult(); over {
		h.send("offer draw")
	}
}

func (h *Handler) timeCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	if centis, err := strconv.Atoi(tokens[1]); err == nil {
		h.myTimeCentis = centis
	}
}

func (h *Handler) levelCommand(tokens []string) {
	if len(tokens) < 4 {
		return
	}
	if mps, err := strconv.Atoi(tokens[1]); err == nil && mps > 0 {
		h.movesToGo = mps
	}
	if inc, err := strconv.Atoi(tokens[3]); err == nil {
		h.incrementSecs = inc
	}
}

func (h *Handler) stCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	if secs, err := strconv.Atoi(tokens[1]); err == nil && secs > 0 {
		h.myTimeCentis = secs * 100
		h.movesToGo = 1
	}
}

func (h *Handler) optionCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	h.log.Debugf("xboard: option %s not recognized, ignored", tokens[1])
}

// startThinking launches the engine's Think call in its own goroutine so
// the adapter's read loop stays responsive to "?" and other commands
// while it runs, and reports the move once it returns.
func (h *Handler) startThinking() {
	if h.thinking.Load() {
		return
	}
	h.thinking.Store(true)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		timeMs := h.moveTimeBudgetMs()
		m, _ := h.eng.Think(0, timeMs, 0)
		h.thinking.Store(false)

		if m != MoveNone {
			mover := h.eng.Board().SideToMove()
			if h.eng.MakeMove(m) != engine.StatusOK {
				h.log.Errorf("xboard: search returned illegal move %s", m.UCI(mover))
			} else {
				h.send("move " + m.UCI(mover))
				if over, desc := h.eng.GameResult(); over {
					h.send(desc)
				}
			}
		}

		h.replayDeferred()
	}()
}

// replayDeferred dispatches the one command line (if any) that arrived
// and was queued while the engine was thinking, now that it has stopped.
func (h *Handler) replayDeferred() {
	h.deferredMu.Lock()
	line := h.deferred
	h.deferred = ""
	h.deferredMu.Unlock()
	if line != "" {
		h.dispatch(line)
	}
}

// moveTimeBudgetMs computes how long Think should search this move for,
// from the clock state XBoard's "time"/"level"/"st" commands supplied.
// The clock model itself lives entirely in the adapter, per spec: the
// core only ever receives a flat millisecond budget.
func (h *Handler) moveTimeBudgetMs() int {
	if h.myTimeCentis <= 0 {
		return int(config.Settings.Search.DefaultMoveTimeMs)
	}
	movesToGo := h.movesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budgetMs := (h.myTimeCentis * 10) / movesToGo
	budgetMs += h.incrementSecs * 1000 / 2
	if budgetMs <= 0 {
		return int(config.Settings.Search.DefaultMoveTimeMs)
	}
	return budgetMs
}

var regexMoveText = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][nbrqNBRQ]?$`)

func isMoveText(s string) bool {
	return regexMoveText.MatchString(s)
}

func (h *Handler) send(s string) {
	h.protoLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

// identify returns the engine name/version banner XBoard expects before
// feature negotiation on some GUIs that don't send "protover" first.
func (h *Handler) identify() string {
	return fmt.Sprintf("%s %s", config.Settings.Protocol.MyName, engineVersion)
}
