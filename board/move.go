package board

// Move is an immutable record of a single move: source, destination, the
// moving piece, whether the destination holds an opposing piece, and an
// optional promotion target (NoPiece when absent). Moves compare with == and
// order by field tuple, so generated lists are deterministic in tests.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
	Piece     Piece
	IsCapture bool
}

// Quiet builds a non-capturing move without promotion.
func Quiet(from, to Square, piece Piece) Move {
	return Move{From: from, To: to, Promotion: NoPiece, Piece: piece}
}

// Capture builds a capturing move without promotion.
func Capture(from, to Square, piece Piece) Move {
	return Move{From: from, To: to, Promotion: NoPiece, Piece: piece, IsCapture: true}
}

// NewMove builds a move with every field explicit.
func NewMove(from, to Square, promotion, piece Piece, isCapture bool) Move {
	return Move{From: from, To: to, Promotion: promotion, Piece: piece, IsCapture: isCapture}
}

// key packs the ordering tuple (piece, from, to, promotion, capture) into a
// single comparable integer, piece first so that a full generation pass comes
// out sorted.
func (m Move) key() uint32 {
	k := uint32(m.Piece)<<17 | uint32(m.From)<<11 | uint32(m.To)<<5 | uint32(m.Promotion)<<1
	if m.IsCapture {
		k |= 1
	}
	return k
}

// Less orders moves by (piece, from, to, promotion, capture).
func (m Move) Less(other Move) bool { return m.key() < other.key() }

// String renders the move in coordinate form, e.g. "b2b3"; captures carry an
// "x" separator and a promotion appends its letter.
func (m Move) String() string {
	sep := ""
	if m.IsCapture {
		sep = "x"
	}
	s := m.From.String() + sep + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Char())
	}
	return s
}
