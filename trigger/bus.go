package trigger

import "strings"

// Command is one of the two operations the activation surface exposes.
type Command int

const (
	CmdActivate Command = iota
	CmdDisable
)

func (c Command) String() string {
	switch c {
	case CmdActivate:
		return "activate"
	case CmdDisable:
		return "disable"
	}
	return "unknown"
}

// Bus queues trigger commands from background sources (console, socket)
// for the update loop to drain, so controller state is only ever touched
// from the update goroutine. Posts never block: the sequence is one-shot,
// so dropping surplus commands loses nothing.
type Bus struct {
	ch chan Command
}

// NewBus creates a bus with a small fixed queue.
func NewBus() *Bus {
	return &Bus{ch: make(chan Command, 8)}
}

// Post enqueues a command, dropping it if the queue is full.
func (b *Bus) Post(cmd Command) {
	select {
	case b.ch <- cmd:
	default:
	}
}

// Drain delivers every queued command to fn on the caller's goroutine.
func (b *Bus) Drain(fn func(Command)) {
	for {
		select {
		case cmd := <-b.ch:
			fn(cmd)
		default:
			return
		}
	}
}

// Parse maps the wire/console spelling of a command.
func Parse(s string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "activate":
		return CmdActivate, true
	case "disable":
		return CmdDisable, true
	}
	return 0, false
}
