// Package fen owns the textual position grammar: it splits and validates the
// space-separated fields of a position record and expands the piece-placement
// field into a flat 64-entry scan, leaving piece-letter interpretation to the
// caller.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartPosition is the standard initial position record.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the decoded form of a position record. Placement holds one
// byte per square in scan order (rank 8 to rank 1, file a to file h within
// each rank): a FEN piece letter, or 0 for an empty square.
type Position struct {
	Placement      [64]byte
	SideToMove     byte   // 'w' or 'b'
	Castling       string // subset of "KQkq", or "-"
	EnPassant      string // algebraic square, or "-"
	HalfmoveClock  int
	FullmoveNumber int
}

var (
	errFields    = errors.New("invalid FEN: not enough fields")
	errRanks     = errors.New("invalid FEN: piece placement must have 8 ranks")
	errRankWidth = errors.New("invalid FEN: rank does not cover 8 files")
	errSide      = errors.New("invalid FEN: side to move must be 'w' or 'b'")
	errCastling  = errors.New("invalid FEN: invalid castling rights character")
	errEnPassant = errors.New("invalid FEN: invalid en passant square")
)

// Parse splits a position record into its fields. The first four fields are
// required; the clock fields default to 0 and 1 when absent. Piece letters
// are carried through untouched; callers own the piece alphabet.
func Parse(text string) (Position, error) {
	var pos Position
	fields := strings.Fields(text)
	if len(fields) < 4 {
		return pos, errFields
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return pos, errRanks
	}
	for i, rankStr := range ranks {
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return pos, errRankWidth
			}
			pos.Placement[i*8+file] = ch
			file++
		}
		if file != 8 {
			return pos, errRankWidth
		}
	}

	switch fields[1] {
	case "w", "b":
		pos.SideToMove = fields[1][0]
	default:
		return pos, errSide
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			if !strings.ContainsRune("KQkq", ch) {
				return pos, errCastling
			}
		}
	}
	pos.Castling = fields[2]

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return pos, errEnPassant
		}
		if f, r := fields[3][0], fields[3][1]; f < 'a' || f > 'h' || r < '1' || r > '8' {
			return pos, errEnPassant
		}
	}
	pos.EnPassant = fields[3]

	pos.FullmoveNumber = 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return pos, fmt.Errorf("invalid FEN: halfmove clock: %w", err)
		}
		pos.HalfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return pos, fmt.Errorf("invalid FEN: fullmove number: %w", err)
		}
		pos.FullmoveNumber = n
	}
	return pos, nil
}

// Format renders a Position back into its canonical text form, compressing
// runs of empty squares into digits.
func Format(pos Position) string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			ch := pos.Placement[rank*8+file]
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteByte(pos.SideToMove)
	sb.WriteByte(' ')
	if pos.Castling == "" {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.Castling)
	}
	sb.WriteByte(' ')
	if pos.EnPassant == "" {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EnPassant)
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))
	return sb.String()
}
