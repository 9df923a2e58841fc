package sketch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() Command {
	return NewStroke(Point{X: 1, Y: 1}, StrokeStyle{Color: color.Black, Width: 2})
}

func commandIDs(cmds []Command) []string {
	ids := make([]string, len(cmds))
	for i, c := range cmds {
		ids[i] = c.ID()
	}
	return ids
}

func TestCommitUndoRedoRoundTrip(t *testing.T) {
	h := NewHistory(&Notifier{})

	const n = 5
	for i := 0; i < n; i++ {
		h.Commit(newTestCommand())
	}
	committed := commandIDs(h.Commands())

	for i := 0; i < n; i++ {
		h.Undo()
	}
	assert.Empty(t, h.Commands())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	for i := 0; i < n; i++ {
		h.Redo()
	}
	assert.Equal(t, committed, commandIDs(h.Commands()), "redo must restore content and order")
	assert.False(t, h.CanRedo())
}

func TestCommitInvalidatesRedo(t *testing.T) {
	h := NewHistory(&Notifier{})
	h.Commit(newTestCommand())
	h.Commit(newTestCommand())
	h.Undo()
	require.True(t, h.CanRedo())

	h.Commit(newTestCommand())
	assert.False(t, h.CanRedo(), "a new edit forks the timeline")
}

func TestUndoOnEmptyIsSilentNoop(t *testing.T) {
	n := &Notifier{}
	fired := 0
	n.Subscribe(func(Signal) { fired++ })
	h := NewHistory(n)

	h.Undo()
	h.Redo()

	assert.Zero(t, fired, "no-ops must not notify")
	assert.Empty(t, h.Commands())
}

func TestClearEmptiesBothStacks(t *testing.T) {
	h := NewHistory(&Notifier{})
	h.Commit(newTestCommand())
	h.Commit(newTestCommand())
	h.Undo()

	h.Clear()

	assert.Empty(t, h.Commands())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestCommitNilIsIgnored(t *testing.T) {
	h := NewHistory(&Notifier{})
	h.Commit(nil)
	assert.Empty(t, h.Commands())
}

func TestMutationsNotifySynchronously(t *testing.T) {
	n := &Notifier{}
	var got []Signal
	n.Subscribe(func(s Signal) { got = append(got, s) })
	h := NewHistory(n)

	h.Commit(newTestCommand())
	h.Undo()
	h.Redo()
	h.Clear()

	assert.Equal(t, []Signal{SignalContent, SignalContent, SignalContent, SignalContent}, got)
}

func TestCommandsReturnsCopy(t *testing.T) {
	h := NewHistory(&Notifier{})
	h.Commit(newTestCommand())

	cmds := h.Commands()
	cmds[0] = nil

	require.Len(t, h.Commands(), 1)
	assert.NotNil(t, h.Commands()[0])
}
