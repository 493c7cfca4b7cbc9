package hal

import "sync"

type hostKeyboard struct {
	mu    sync.Mutex
	state KeyState
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{state: KeyState{}}
}

// State returns a copy of the current snapshot, safe to hold across frames.
func (k *hostKeyboard) State() KeyState {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make(KeyState, len(k.state))
	for key, down := range k.state {
		if down {
			out[key] = true
		}
	}
	return out
}

// SetState replaces the snapshot. The window loop calls it once per tick;
// headless drivers and tests feed scripted input through it.
func (k *hostKeyboard) SetState(s KeyState) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.state = s
}
