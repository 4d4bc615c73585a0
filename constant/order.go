package constant

type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1
	OrderStatusCompleted OrderStatus = 2
	OrderStatusFailed    OrderStatus = 3
)

var orderStatusName = map[OrderStatus]string{
	OrderStatusPending:   "PENDING",
	OrderStatusCompleted: "COMPLETED",
	OrderStatusFailed:    "FAILED",
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusName[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// orderTransitions is the allowed-transition table. Terminal states have no
// outgoing edges: a repeated gateway callback for a finalized order is a no-op,
// not a re-application of the success path.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusCompleted, OrderStatusFailed},
}

// CanTransition reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}
