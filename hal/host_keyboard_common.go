package hal

const keyQueueLen = 64

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, keyQueueLen)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// inject queues ev, dropping it when the queue is full.
func (k *hostKeyboard) inject(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
