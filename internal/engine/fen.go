// Package engine provides the attack primitives, check detection, move
// application and static exchange evaluation the tactical detectors are
// built from.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"chess-tactics/internal/chess"
	"chess-tactics/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement, side-to-move and en passant fields matter here; castling
// rights and clocks are irrelevant to single-move analysis and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	parseEnPassant(board, parts)

	return board, nil
}

// MustBoardFromFEN is NewBoardFromFEN that panics on error. For tests and
// known-good literals only.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(fmt.Sprintf("bad FEN %q: %v", fen, err))
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.Rank('8')
	col := chess.Col('a')

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			col = 'a'
		case c >= '1' && c <= '8':
			col += chess.Col(c - '0')
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %c", c)
			}
			if col > 'h' || rank < '1' {
				return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
			col++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %s", parts[1])
	}
	return nil
}

// parseEnPassant parses the en passant target square field. The castling
// field sits between side-to-move and en passant, so this looks at parts[3].
func parseEnPassant(board *chess.Board, parts []string) {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" || len(parts[3]) != 2 {
		return
	}
	col := chess.Col(parts[3][0])
	rank := chess.Rank(parts[3][1])
	if !chess.OnBoard(col, rank) {
		return
	}
	board.EnPassant = true
	board.EPCol = col
	board.EPRank = rank
}

// ToFEN renders the piece placement and side to move of a board, mainly for
// diagnostics and test failure messages.
func ToFEN(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		empty := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := chess.ExtractPiece(piece).Letter()
			if chess.ExtractColour(piece) == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
	if board.ToMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
