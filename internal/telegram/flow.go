package telegram

import "sync"

// Step tags the admin workflow step the next inbound message completes.
type Step string

const (
	StepAddChannel    Step = "add_channel"
	StepRemoveChannel Step = "remove_channel"
	StepBroadcast     Step = "broadcast"
)

// Continuation is the expectation that the next message in a chat belongs to
// a multi-step admin workflow. AdminID is the sender that registered it.
type Continuation struct {
	Step    Step
	AdminID int64
}

// FlowTracker keeps at most one pending continuation per chat. Registering a
// new one replaces the previous (last registration wins); consuming is a
// single atomic read-and-clear, so one inbound event can never trigger the
// same continuation twice.
type FlowTracker struct {
	mu      sync.Mutex
	pending map[int64]Continuation
}

func NewFlowTracker() *FlowTracker {
	return &FlowTracker{
		pending: make(map[int64]Continuation),
	}
}

func (t *FlowTracker) Register(chatID int64, cont Continuation) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[chatID] = cont
}

// Consume atomically reads and clears the pending continuation for the chat.
func (t *FlowTracker) Consume(chatID int64) (Continuation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cont, ok := t.pending[chatID]
	if !ok {
		return Continuation{}, false
	}
	delete(t.pending, chatID)
	return cont, true
}

// ConsumeFor consumes the pending continuation only when senderID matches
// the admin that registered it. A non-matching sender leaves the
// continuation pending.
func (t *FlowTracker) ConsumeFor(chatID, senderID int64) (Continuation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cont, ok := t.pending[chatID]
	if !ok || cont.AdminID != senderID {
		return Continuation{}, false
	}
	delete(t.pending, chatID)
	return cont, true
}
