package sketch

// History owns the display list and the redo stack. It is the only writer
// of either; everything the user sees on the canvas flows through Commit.
type History struct {
	display  []Command
	redo     []Command
	notifier *Notifier
}

func NewHistory(n *Notifier) *History {
	return &History{notifier: n}
}

// Commit appends cmd to the display list and invalidates any redo history:
// a new edit forks the timeline, so previously undone commands are gone.
func (h *History) Commit(cmd Command) {
	if cmd == nil {
		return
	}
	h.display = append(h.display, cmd)
	h.redo = h.redo[:0]
	h.notifier.Publish(SignalContent)
}

// Undo moves the most recent command onto the redo stack. No-op when the
// display list is empty.
func (h *History) Undo() {
	if len(h.display) == 0 {
		return
	}
	last := h.display[len(h.display)-1]
	h.display = h.display[:len(h.display)-1]
	h.redo = append(h.redo, last)
	h.notifier.Publish(SignalContent)
}

// Redo re-appends the most recently undone command at the end of the
// display list. It restores content, not z-order history: the command
// repaints on top. No-op when the redo stack is empty.
func (h *History) Redo() {
	if len(h.redo) == 0 {
		return
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.display = append(h.display, last)
	h.notifier.Publish(SignalContent)
}

// Clear empties both stacks. The next repaint shows a blank canvas.
func (h *History) Clear() {
	h.display = nil
	h.redo = nil
	h.notifier.Publish(SignalContent)
}

func (h *History) CanUndo() bool { return len(h.display) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Commands returns the display list in paint order.
func (h *History) Commands() []Command {
	cmds := make([]Command, len(h.display))
	copy(cmds, h.display)
	return cmds
}
