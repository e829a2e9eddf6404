// Package board implements the minimal legal-chess collaborator the search
// core in internal/search needs: a position representation, pseudo-legal
// move generation, make/unmake with incremental Zobrist maintenance, attack
// detection and a small material+mobility evaluation. It is deliberately not
// a full chess library — no SAN, no opening theory, no tablebases.
package board

// Square is a board index 0..63, a1=0, h8=63, rank-major.
type Square int8

const NoSquare Square = -1

func (s Square) File() int { return int(s) & 7 }
func (s Square) Rank() int { return int(s) >> 3 }

func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// Color is White or Black.
type Color int8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color { return c ^ 1 }

// PieceType identifies a piece kind irrespective of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece packs a color and a piece type; zero value is the empty square.
type Piece int8

const NoPiece Piece = 0

func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int8(pt) | int8(c)<<3)
}

func (p Piece) Type() PieceType { return PieceType(p & 7) }
func (p Piece) Color() Color    { return Color((p >> 3) & 1) }
func (p Piece) IsEmpty() bool   { return p == NoPiece }

// CastlingRights is a 4-bit mask.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// MoveFlag distinguishes special move kinds that need extra make/unmake work.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	Capture
	DoublePawnPush
	EnPassantCapture
	CastleKingside
	CastleQueenside
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	PromoteKnightCapture
	PromoteBishopCapture
	PromoteRookCapture
	PromoteQueenCapture
)

func (f MoveFlag) IsPromotion() bool {
	return f >= PromoteKnight
}

func (f MoveFlag) PromotedType() PieceType {
	switch f {
	case PromoteKnight, PromoteKnightCapture:
		return Knight
	case PromoteBishop, PromoteBishopCapture:
		return Bishop
	case PromoteRook, PromoteRookCapture:
		return Rook
	case PromoteQueen, PromoteQueenCapture:
		return Queen
	}
	return NoPieceType
}

func (f MoveFlag) IsCapture() bool {
	switch f {
	case Capture, EnPassantCapture, PromoteKnightCapture, PromoteBishopCapture, PromoteRookCapture, PromoteQueenCapture:
		return true
	}
	return false
}

// Move is bit-packed the way the teacher's pkg/types.Move is: from (0-5),
// to (6-11), flag (12-15), a 16-31 value field used as the ordering score
// of the search's quiescence capture/promotion list (component E).
type Move uint32

func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint32(from) | uint32(to)<<6 | uint32(flag)<<12)
}

func (m Move) From() Square    { return Square(m & 0x3f) }
func (m Move) To() Square      { return Square((m >> 6) & 0x3f) }
func (m Move) Flag() MoveFlag  { return MoveFlag((m >> 12) & 0xf) }
func (m Move) Value() int32    { return int32(int16(m >> 16)) }
func (m Move) WithValue(v int32) Move {
	return Move(uint32(m)&0xffff) | Move(uint16(v))<<16
}
func (m Move) IsNull() bool { return m == 0 }

var NullMove Move = 0
