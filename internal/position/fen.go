// Copyright (c) 2024-2026 Caissa Contributors. MIT License. See LICENSE.

package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/caissa-dev/caissa/internal/types"
	"github.com/caissa-dev/caissa/internal/zobrist"
)

var (
	regexFenPos           = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexSideToMove       = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights   = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEnPassantSquare  = regexp.MustCompile(`^([a-h][36]|-)$`)
)

// setFEN resets b to the position described by fen. Only the piece
// placement field is mandatory; every field after it falls back to its
// default (white to move, no castling rights, no en passant target,
// halfmove clock 0, full move 1) the way most FEN consumers in the wild
// tolerate truncated strings.
func (b *Board) setFEN(fen string) error {
	*b = Board{enPassantSquare: SqA1}

	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return errors.New("fen: empty string")
	}
	if !regexFenPos.MatchString(fields[0]) {
		return errors.New("fen: piece placement field contains invalid characters")
	}

	sq := SqA8
	for _, c := range fields[0] {
		switch {
		case c == '/':
			sq = sq.To(South).To(South)
		case c >= '1' && c <= '8':
			sq = Square(int(sq) + int(c-'0'))
		default:
			piece := PieceFromChar(byte(c))
			if piece == PieceNone {
				return fmt.Errorf("fen: invalid piece character %q", c)
			}
			b.putPiece(piece, sq)
			sq++
		}
	}
	if sq != SqA2 {
		return errors.New("fen: piece placement field does not cover exactly 64 squares")
	}

	b.sideToMove = White
	b.fullMoveNumber = 1

	if len(fields) >= 2 {
		if !regexSideToMove.MatchString(fields[1]) {
			return errors.New("fen: side-to-move field must be 'w' or 'b'")
		}
		if fields[1] == "b" {
			b.sideToMove = Black
			b.zobristKey ^= zobrist.SideToMove()
		}
	}

	if len(fields) >= 3 {
		if !regexCastlingRights.MatchString(fields[2]) {
			return fmt.Errorf("fen: invalid castling rights field %q", fields[2])
		}
		var cr CastlingRights
		for _, c := range fields[2] {
			switch c {
			case 'K':
				cr = cr.Add(CastlingWhiteOO)
			case 'Q':
				cr = cr.Add(CastlingWhiteOOO)
			case 'k':
				cr = cr.Add(CastlingBlackOO)
			case 'q':
				cr = cr.Add(CastlingBlackOOO)
			}
		}
		b.castlingRights = cr
		b.zobristKey ^= zobrist.Castling(cr)
	}

	if len(fields) >= 4 && fields[3] != "-" {
		if !regexEnPassantSquare.MatchString(fields[3]) {
			return fmt.Errorf("fen: invalid en passant field %q", fields[3])
		}
		epSq := MakeSquare(fields[3])
		b.enPassantSquare = epSq
		b.zobristKey ^= zobrist.EnPassant(epSq)
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		b.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		b.fullMoveNumber = n
	}

	return nil
}

// FEN renders the board back into Forsyth-Edwards notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := b.mailbox[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(b.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteString(" ")
	if b.HasEnPassant() {
		sb.WriteString(b.enPassantSquare.String())
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))
	return sb.String()
}
