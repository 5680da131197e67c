package game

// Listener is notified synchronously after every state-affecting engine call.
// Implementations must return without calling back into the engine.
type Listener interface {
	OnStateChanged(Snapshot)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Snapshot)

func (f ListenerFunc) OnStateChanged(s Snapshot) {
	f(s)
}

// ChannelListener pushes snapshots onto a buffered channel. Sends never block:
// when the buffer is full the oldest snapshot is dropped so the reader always
// catches up to the latest state.
type ChannelListener struct {
	ch chan Snapshot
}

func NewChannelListener(buffer int) *ChannelListener {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelListener{ch: make(chan Snapshot, buffer)}
}

func (l *ChannelListener) OnStateChanged(s Snapshot) {
	for {
		select {
		case l.ch <- s:
			return
		default:
		}
		select {
		case <-l.ch:
		default:
		}
	}
}

// C is the receive side.
func (l *ChannelListener) C() <-chan Snapshot {
	return l.ch
}

// Listeners fans a notification out to several listeners in order.
type Listeners []Listener

func (ls Listeners) OnStateChanged(s Snapshot) {
	for _, l := range ls {
		if l != nil {
			l.OnStateChanged(s)
		}
	}
}
