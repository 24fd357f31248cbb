package domain

// Role identifies which side of a booking is acting
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// IsValid returns true for a known role
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleProvider
}

// Action is a requested booking status transition
type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// transition describes one legal edge of the booking state machine
type transition struct {
	from  map[BookingStatus]struct{}
	to    BookingStatus
	roles map[Role]struct{}
}

var providerOnly = map[Role]struct{}{RoleProvider: {}}

var eitherParty = map[Role]struct{}{RoleCustomer: {}, RoleProvider: {}}

// transitionTable is the single definition of the booking state machine.
// completed and cancelled are terminal: no action leads out of them.
var transitionTable = map[Action]transition{
	ActionAccept: {
		from:  map[BookingStatus]struct{}{StatusPending: {}},
		to:    StatusConfirmed,
		roles: providerOnly,
	},
	ActionDecline: {
		from:  map[BookingStatus]struct{}{StatusPending: {}},
		to:    StatusCancelled,
		roles: providerOnly,
	},
	ActionStart: {
		from:  map[BookingStatus]struct{}{StatusConfirmed: {}},
		to:    StatusInProgress,
		roles: providerOnly,
	},
	ActionComplete: {
		from:  map[BookingStatus]struct{}{StatusInProgress: {}},
		to:    StatusCompleted,
		roles: providerOnly,
	},
	ActionCancel: {
		from: map[BookingStatus]struct{}{
			StatusPending:    {},
			StatusConfirmed:  {},
			StatusInProgress: {},
		},
		to:    StatusCancelled,
		roles: eitherParty,
	},
}

// IsValidAction returns true for a known transition action
func IsValidAction(a Action) bool {
	_, ok := transitionTable[a]
	return ok
}

// NextStatus resolves the target status for action applied to from.
// allowed is false when the edge does not exist in the state machine;
// permitted is false when the edge exists but the role may not drive it.
func NextStatus(from BookingStatus, action Action, role Role) (to BookingStatus, allowed bool, permitted bool) {
	tr, ok := transitionTable[action]
	if !ok {
		return "", false, false
	}
	if _, ok := tr.from[from]; !ok {
		return "", false, false
	}
	if _, ok := tr.roles[role]; !ok {
		return "", true, false
	}
	return tr.to, true, true
}
