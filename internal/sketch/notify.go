package sketch

// Signal kinds published by the drawing model. Observers receive them
// synchronously, in the order they were emitted, before the mutating
// call returns.
type Signal int

const (
	// SignalContent fires when the display list or redo stack changed.
	SignalContent Signal = iota
	// SignalTool fires when the active tool, preview position or preview
	// visibility changed.
	SignalTool
)

// Notifier is a plain observer list. It replaces the custom event bus the
// UI layer would otherwise impose on the model.
type Notifier struct {
	subs []func(Signal)
}

func (n *Notifier) Subscribe(fn func(Signal)) {
	n.subs = append(n.subs, fn)
}

func (n *Notifier) Publish(sig Signal) {
	for _, fn := range n.subs {
		fn(sig)
	}
}
