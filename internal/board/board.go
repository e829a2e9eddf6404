package board

import (
	"fmt"
	"strings"

	"github.com/mkdlabs/chess0go/internal/zobrist"
)

// undoInfo carries everything DoMove mutates so UndoMove can restore it
// without recomputing anything.
type undoInfo struct {
	move            Move
	captured        Piece
	castling        CastlingRights
	epSquare        Square
	halfMoveClock   int
	key             zobrist.Key
}

// Board is the minimal legal-chess position the search core operates on.
type Board struct {
	squares       [64]Piece
	side          Color
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	fullMove      int
	key           zobrist.Key

	history []undoInfo
	keyLog  []zobrist.Key // starting key, then one entry per ply played, for repetition detection
}

// NewStartingPosition returns the standard chess starting position.
func NewStartingPosition() *Board {
	b, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("board: invalid built-in starting FEN: " + err.Error())
	}
	return b
}

// FromFEN parses a (non-exhaustively validated) FEN string.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: FEN %q has too few fields", fen)
	}
	b := &Board{epSquare: NoSquare, fullMove: 1}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: FEN %q does not have 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, col, err := pieceFromRune(c)
			if err != nil {
				return nil, err
			}
			if file > 7 {
				return nil, fmt.Errorf("board: FEN %q rank %d overflows", fen, rank)
			}
			b.squares[SquareOf(file, rank)] = MakePiece(col, pt)
			file++
		}
	}
	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return nil, fmt.Errorf("board: FEN %q has bad side to move", fen)
	}
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castling |= WhiteKingside
			case 'Q':
				b.castling |= WhiteQueenside
			case 'k':
				b.castling |= BlackKingside
			case 'q':
				b.castling |= BlackQueenside
			}
		}
	}
	if fields[3] != "-" {
		sq, err := squareFromAlgebraic(fields[3])
		if err != nil {
			return nil, err
		}
		b.epSquare = sq
	}
	b.key = zobrist.KeyFor(b.pieceArray(), b.side == Black, uint8(b.castling), b.epFile())
	b.keyLog = append(b.keyLog, b.key)
	return b, nil
}

// epFile returns the file of the current en-passant target square, or -1
// if none is set, the plain-int shape internal/zobrist.KeyFor requires.
func (b *Board) epFile() int {
	if b.epSquare == NoSquare {
		return -1
	}
	return b.epSquare.File()
}

func (b *Board) pieceArray() [64]zobrist.PieceCode {
	var out [64]zobrist.PieceCode
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.IsEmpty() {
			continue
		}
		out[sq] = zobrist.PieceCode(p.Color())*6 + zobrist.PieceCode(p.Type())
	}
	return out
}

// zobrist.PieceCode layout: Pawn=1..King=6 per color, so color*6+type
// lands White Pawn at 1 and Black King at 12, leaving 0 free for empty.

func pieceFromRune(c rune) (PieceType, Color, error) {
	col := White
	lc := c
	if c >= 'a' && c <= 'z' {
		col = Black
	} else {
		lc = c + ('a' - 'A')
	}
	var pt PieceType
	switch lc {
	case 'p':
		pt = Pawn
	case 'n':
		pt = Knight
	case 'b':
		pt = Bishop
	case 'r':
		pt = Rook
	case 'q':
		pt = Queen
	case 'k':
		pt = King
	default:
		return 0, 0, fmt.Errorf("board: unknown FEN piece %q", c)
	}
	return pt, col, nil
}

func squareFromAlgebraic(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("board: bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("board: bad square %q", s)
	}
	return SquareOf(file, rank), nil
}

// PliesPlayed returns the number of half-moves played since this position
// was constructed, used by the search's time-control formula (spec.md
// §4.G.a's endOfSearch).
func (b *Board) PliesPlayed() int { return len(b.history) }

func (b *Board) SideToMove() Color      { return b.side }
func (b *Board) Key() zobrist.Key       { return b.key }
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }
func (b *Board) HalfMoveClock() int     { return b.halfMoveClock }
func (b *Board) EnPassantSquare() Square { return b.epSquare }
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// KingSquare finds c's king. Every position built through FromFEN/DoMove
// that reaches the search is assumed to keep exactly one king per side.
func (b *Board) KingSquare(c Color) Square {
	king := MakePiece(c, King)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the side to move's king is attacked.
func (b *Board) InCheck() bool {
	return b.IsAttacked(b.KingSquare(b.side), b.side.Other())
}

// DoMove applies m, assumed pseudo-legal, updating all incremental state.
func (b *Board) DoMove(m Move) {
	from, to, flag := m.From(), m.To(), m.Flag()
	moving := b.squares[from]

	info := undoInfo{
		move:          m,
		captured:      b.squares[to],
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfMoveClock: b.halfMoveClock,
		key:           b.key,
	}

	if flag == EnPassantCapture {
		capSq := SquareOf(to.File(), from.Rank())
		info.captured = b.squares[capSq]
		b.squares[capSq] = NoPiece
	}

	b.squares[from] = NoPiece
	if flag.IsPromotion() {
		b.squares[to] = MakePiece(b.side, flag.PromotedType())
	} else {
		b.squares[to] = moving
	}

	if flag == CastleKingside || flag == CastleQueenside {
		rank := from.Rank()
		var rookFrom, rookTo Square
		if flag == CastleKingside {
			rookFrom, rookTo = SquareOf(7, rank), SquareOf(5, rank)
		} else {
			rookFrom, rookTo = SquareOf(0, rank), SquareOf(3, rank)
		}
		b.squares[rookTo] = b.squares[rookFrom]
		b.squares[rookFrom] = NoPiece
	}

	if moving.Type() == Pawn || flag.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	b.epSquare = NoSquare
	if flag == DoublePawnPush {
		b.epSquare = SquareOf(from.File(), (int(from.Rank())+int(to.Rank()))/2)
	}

	b.castling &^= castlingLost(from) | castlingLost(to)

	if b.side == Black {
		b.fullMove++
	}
	b.side = b.side.Other()
	b.key = zobrist.KeyFor(b.pieceArray(), b.side == Black, uint8(b.castling), b.epFile())

	b.history = append(b.history, info)
	b.keyLog = append(b.keyLog, b.key)
}

// UndoMove reverts the most recent DoMove.
func (b *Board) UndoMove() {
	n := len(b.history) - 1
	info := b.history[n]
	b.history = b.history[:n]
	b.keyLog = b.keyLog[:len(b.keyLog)-1]

	if b.side == White {
		b.fullMove--
	}
	b.side = b.side.Other()

	m := info.move
	from, to, flag := m.From(), m.To(), m.Flag()

	if flag.IsPromotion() {
		b.squares[from] = MakePiece(b.side, Pawn)
	} else {
		b.squares[from] = b.squares[to]
	}
	b.squares[to] = NoPiece

	if flag == EnPassantCapture {
		capSq := SquareOf(to.File(), from.Rank())
		b.squares[capSq] = info.captured
	} else if info.captured != NoPiece {
		b.squares[to] = info.captured
	}

	if flag == CastleKingside || flag == CastleQueenside {
		rank := from.Rank()
		var rookFrom, rookTo Square
		if flag == CastleKingside {
			rookFrom, rookTo = SquareOf(7, rank), SquareOf(5, rank)
		} else {
			rookFrom, rookTo = SquareOf(0, rank), SquareOf(3, rank)
		}
		b.squares[rookFrom] = b.squares[rookTo]
		b.squares[rookTo] = NoPiece
	}

	b.castling = info.castling
	b.epSquare = info.epSquare
	b.halfMoveClock = info.halfMoveClock
	b.key = info.key
}

// DoNullMove passes the move without touching the board, used by the
// search's null-move pruning (component F).
func (b *Board) DoNullMove() {
	b.history = append(b.history, undoInfo{epSquare: b.epSquare, key: b.key})
	b.epSquare = NoSquare
	b.side = b.side.Other()
	b.key = zobrist.KeyFor(b.pieceArray(), b.side == Black, uint8(b.castling), b.epFile())
}

func (b *Board) UndoNullMove() {
	n := len(b.history) - 1
	info := b.history[n]
	b.history = b.history[:n]
	b.side = b.side.Other()
	b.epSquare = info.epSquare
	b.key = info.key
}

func castlingLost(sq Square) CastlingRights {
	switch sq {
	case SquareOf(4, 0):
		return WhiteKingside | WhiteQueenside
	case SquareOf(0, 0):
		return WhiteQueenside
	case SquareOf(7, 0):
		return WhiteKingside
	case SquareOf(4, 7):
		return BlackKingside | BlackQueenside
	case SquareOf(0, 7):
		return BlackQueenside
	case SquareOf(7, 7):
		return BlackKingside
	}
	return 0
}

// RepetitionCount counts how many times the current key has occurred in
// this game, the starting position and the current occurrence included, so
// a position reached for the third time yields 3. Grounded on
// original_source/src/search.cpp's repetitionCount().
func (b *Board) RepetitionCount() int {
	count := 0
	for _, k := range b.keyLog {
		if k == b.key {
			count++
		}
	}
	return count
}

// HasInsufficientMaterial reports the draws original_source/src/search.cpp's
// isEndOfgame() classifies as "draw due to insufficient material": K vs K,
// K+N vs K, any number of bishops (of either side) all on squares of one
// colour with no knights/rooks/queens anywhere, and its "4.5" rule K+minor vs K+minor
// (e.g. K+N vs K+N, K+B vs K+B, K+N vs K+B) regardless of bishop colour.
func (b *Board) HasInsufficientMaterial() bool {
	var whiteKnights, whiteBishops, whiteRooks, whiteQueens int
	var blackKnights, blackBishops, blackRooks, blackQueens int
	var bishopSquares []Square

	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p.IsEmpty() || p.Type() == King {
			continue
		}
		if p.Type() == Pawn {
			return false
		}
		white := p.Color() == White
		switch p.Type() {
		case Knight:
			if white {
				whiteKnights++
			} else {
				blackKnights++
			}
		case Bishop:
			if white {
				whiteBishops++
			} else {
				blackBishops++
			}
			bishopSquares = append(bishopSquares, sq)
		case Rook:
			if white {
				whiteRooks++
			} else {
				blackRooks++
			}
		case Queen:
			if white {
				whiteQueens++
			} else {
				blackQueens++
			}
		}
	}

	whiteMat := 3*whiteKnights + 3*whiteBishops + 5*whiteRooks + 10*whiteQueens
	blackMat := 3*blackKnights + 3*blackBishops + 5*blackRooks + 10*blackQueens

	// king versus king
	if whiteMat == 0 && blackMat == 0 {
		return true
	}

	// king and knight versus king
	if (whiteMat == 3 && whiteKnights == 1 && blackMat == 0) ||
		(blackMat == 3 && blackKnights == 1 && whiteMat == 0) {
		return true
	}

	// two kings with one or more bishops, all bishops on the same colour
	// square, no knights/rooks/queens anywhere
	if whiteBishops+blackBishops > 0 &&
		whiteKnights == 0 && whiteRooks == 0 && whiteQueens == 0 &&
		blackKnights == 0 && blackRooks == 0 && blackQueens == 0 {
		allLight, allDark := true, true
		for _, sq := range bishopSquares {
			if isLightSquare(sq) {
				allDark = false
			} else {
				allLight = false
			}
		}
		if allLight || allDark {
			return true
		}
	}

	// "4.5" rule: king+minor versus king+minor
	if whiteMat == 3 && blackMat == 3 {
		return true
	}

	return false
}

// isLightSquare reports whether sq is a light square, the same parity test
// original_source's WHITE_SQUARES/BLACK_SQUARES bitboards encode.
func isLightSquare(sq Square) bool {
	return (sq.File()+sq.Rank())%2 != 0
}

func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := b.squares[SquareOf(file, rank)]
			sb.WriteRune(pieceRune(p))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pieceRune(p Piece) rune {
	if p.IsEmpty() {
		return '.'
	}
	var r rune
	switch p.Type() {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	}
	if p.Color() == White {
		r -= 'a' - 'A'
	}
	return r
}
