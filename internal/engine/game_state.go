package engine

// Status summarises a player's situation on its board.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal returns true if the game cannot continue.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Status returns whether the player is mated, stalemated, in check or free to move.
func (p *Player) Status() Status {
	escapes := p.HasEscapeMoves()
	switch {
	case p.inCheck && !escapes:
		return Checkmate
	case !escapes:
		return Stalemate
	case p.inCheck:
		return Check
	}
	return InProgress
}
