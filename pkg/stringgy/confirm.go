package stringgy

import "github.com/honeybugserial/stringgeryhtiger/pkg/types"

// Confirmer approves or declines a single write after seeing its preview.
// Returning an error cancels the rest of the session.
type Confirmer interface {
	ConfirmWrite(p types.Preview) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(p types.Preview) (bool, error)

func (f ConfirmFunc) ConfirmWrite(p types.Preview) (bool, error) { return f(p) }

// AlwaysConfirm approves every write.
var AlwaysConfirm Confirmer = ConfirmFunc(func(types.Preview) (bool, error) { return true, nil })

// NeverConfirm declines every write.
var NeverConfirm Confirmer = ConfirmFunc(func(types.Preview) (bool, error) { return false, nil })
