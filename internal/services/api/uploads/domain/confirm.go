package domain

// Confirmer asks the caller whether a destructive action may go ahead
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmFunc adapts a function to Confirmer; a nil func proceeds
type ConfirmFunc func(message string) bool

// Confirm implements Confirmer
func (f ConfirmFunc) Confirm(message string) bool {
	if f == nil {
		return true
	}
	return f(message)
}

// Proceed confirms everything, used when no prompt can be shown
var Proceed Confirmer = ConfirmFunc(nil)

// Confirm runs c, treating a nil Confirmer as Proceed
func Confirm(c Confirmer, message string) bool {
	if c == nil {
		return true
	}
	return c.Confirm(message)
}
