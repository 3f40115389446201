package entities

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// InventoryAction is the ledger operation a transition performs on every
// order line.
type InventoryAction int

const (
	InventoryNone InventoryAction = iota
	InventoryRelease
	InventoryCommit
)

// transitions is the complete order state machine. Anything not listed is
// illegal, including re-entering the current status.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a *TransitionError for illegal moves.
func CheckTransition(from, to Status) error {
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

func (s Status) InventoryAction() InventoryAction {
	switch s {
	case StatusCancelled:
		return InventoryRelease
	case StatusDelivered:
		return InventoryCommit
	default:
		return InventoryNone
	}
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
