package chess

// MoveRecord is what is needed to take a move back or play it again.
type MoveRecord struct {
	Line       Line
	Player     Player
	TurnBefore Player
	Boxes      int
}

// History keeps applied moves in past, most recent last, and undone moves in
// future, most recently undone last.
type History struct {
	past   []MoveRecord
	future []MoveRecord
}

// Push records a new move; it invalidates everything that could be redone.
func (h *History) Push(r MoveRecord) {
	h.past = append(h.past, r)
	h.future = nil
}

func (h *History) Undo() (r MoveRecord, ok bool) {
	if len(h.past) == 0 {
		return
	}
	r = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, r)
	return r, true
}

func (h *History) Redo() (r MoveRecord, ok bool) {
	if len(h.future) == 0 {
		return
	}
	r = h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, r)
	return r, true
}

func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

func (h History) CanUndo() bool { return len(h.past) > 0 }

func (h History) CanRedo() bool { return len(h.future) > 0 }

func (h History) Past() []MoveRecord { return append([]MoveRecord(nil), h.past...) }

func (h History) Future() []MoveRecord { return append([]MoveRecord(nil), h.future...) }
