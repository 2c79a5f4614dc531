package engine

import (
	"chess-tactics/internal/chess"
	"chess-tactics/internal/errors"
)

// ParseMoveCode decodes a 4-5 character move code ("e2e4", "e7e8q") against
// a board. The moving piece and any captured piece are read from the board.
func ParseMoveCode(board *chess.Board, code string) (*chess.Move, error) {
	if len(code) < 4 || len(code) > 5 {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "move code %q", code)
	}

	fromCol := chess.Col(code[0])
	fromRank := chess.Rank(code[1])
	toCol := chess.Col(code[2])
	toRank := chess.Rank(code[3])
	if !chess.OnBoard(fromCol, fromRank) || !chess.OnBoard(toCol, toRank) {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "move code %q", code)
	}

	piece := board.Get(fromCol, fromRank)
	if piece <= chess.Empty {
		return nil, errors.Wrapf(errors.ErrNoPiece, "move code %q", code)
	}

	move := &chess.Move{
		Text:          code,
		FromCol:       fromCol,
		FromRank:      fromRank,
		ToCol:         toCol,
		ToRank:        toRank,
		PieceToMove:   piece,
		CapturedPiece: chess.Empty,
		PromotedPiece: chess.Empty,
	}

	target := board.Get(toCol, toRank)
	if target > chess.Empty {
		move.CapturedPiece = target
	} else if chess.ExtractPiece(piece) == chess.Pawn &&
		board.EnPassant && toCol == board.EPCol && toRank == board.EPRank {
		move.CapturedPiece = chess.MakeColouredPiece(chess.ExtractColour(piece).Opposite(), chess.Pawn)
	}

	if len(code) == 5 {
		promoted := ConvertFENCharToPiece(code[4])
		switch promoted {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
			move.PromotedPiece = promoted
		default:
			return nil, errors.Wrapf(errors.ErrInvalidMove, "promotion %q", code)
		}
	}

	return move, nil
}

// Apply mutates the board to the position after the move: capture (including
// en passant), promotion, the rook shift of a castling king move, king
// position bookkeeping and the side-to-move toggle. It assumes the move was
// chosen by an engine and does not validate legality.
func Apply(board *chess.Board, move *chess.Move) {
	if move == nil {
		return
	}
	colour := chess.ExtractColour(move.PieceToMove)
	pieceType := chess.ExtractPiece(move.PieceToMove)

	// En passant capture removes the pawn beside the destination.
	if pieceType == chess.Pawn && move.IsCapture() && board.Get(move.ToCol, move.ToRank) == chess.Empty {
		board.Clear(move.ToCol, move.FromRank)
	}

	board.Clear(move.FromCol, move.FromRank)
	arriving := move.PieceToMove
	if move.PromotedPiece != chess.Empty {
		arriving = chess.MakeColouredPiece(colour, move.PromotedPiece)
	}
	board.Set(move.ToCol, move.ToRank, arriving)

	// A king stepping two files is a castle; bring the rook across.
	if pieceType == chess.King && abs(int(move.ToCol)-int(move.FromCol)) == 2 {
		rook := chess.MakeColouredPiece(colour, chess.Rook)
		if move.ToCol > move.FromCol {
			board.Clear('h', move.ToRank)
			board.Set('f', move.ToRank, rook)
		} else {
			board.Clear('a', move.ToRank)
			board.Set('d', move.ToRank, rook)
		}
	}

	// Record a fresh en passant square on a double pawn push.
	board.EnPassant = false
	if pieceType == chess.Pawn && abs(int(move.ToRank)-int(move.FromRank)) == 2 {
		board.EnPassant = true
		board.EPCol = move.ToCol
		board.EPRank = chess.Rank((int(move.ToRank) + int(move.FromRank)) / 2)
	}

	board.ToMove = colour.Opposite()
}

// ApplyToCopy returns the post-move position without touching the input board.
func ApplyToCopy(board *chess.Board, move *chess.Move) *chess.Board {
	post := board.Copy()
	Apply(post, move)
	return post
}
