package action

import "errors"

// Impossible reports an action that cannot legally complete this turn.
// It is an expected outcome: nothing was mutated and no turn was spent.
type Impossible struct {
	Msg string
}

func (e *Impossible) Error() string { return e.Msg }

func impossible(msg string) error {
	return &Impossible{Msg: msg}
}

// AsImpossible extracts the user-facing message from err when it is an
// Impossible.
func AsImpossible(err error) (string, bool) {
	var imp *Impossible
	if errors.As(err, &imp) {
		return imp.Msg, true
	}
	return "", false
}

// Messages shown when an action is refused.
const (
	MsgBlocked         = "That way is blocked."
	MsgNothingToAttack = "Nothing to attack."
	MsgNothingHere     = "There is nothing here to pick up."
	MsgInventoryFull   = "Your inventory is full."
	MsgNotCarrying     = "You are not carrying that."
	MsgHealthFull      = "Your health is already full."
	MsgNoEnemyInRange  = "No enemy is close enough to strike."
	MsgCannotSee       = "You cannot target an area that you cannot see."
	MsgSelectEnemy     = "You must select an enemy to target."
	MsgConfuseSelf     = "You cannot confuse yourself!"
	MsgNoTargets       = "There are no targets in the radius."
	MsgNeedsTarget     = "Select a target location."
)
