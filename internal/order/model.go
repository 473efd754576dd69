package order

// Status tracks a single checkout attempt. VERIFIED and REJECTED are
// terminal.
type Status string

const (
	StatusCreated         Status = "CREATED"
	StatusAwaitingPayment Status = "AWAITING_PAYMENT"
	StatusVerified        Status = "VERIFIED"
	StatusRejected        Status = "REJECTED"
)

var transitions = map[Status][]Status{
	StatusCreated:         {StatusAwaitingPayment},
	StatusAwaitingPayment: {StatusVerified, StatusRejected},
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Outcome resolves the terminal state for a verification result. Claims are
// only ever evaluated for attempts awaiting payment, so the transition is
// checked from AWAITING_PAYMENT; anything the table does not allow rejects.
func Outcome(valid bool) Status {
	to := StatusRejected
	if valid {
		to = StatusVerified
	}
	if !StatusAwaitingPayment.CanTransition(to) {
		return StatusRejected
	}
	return to
}
