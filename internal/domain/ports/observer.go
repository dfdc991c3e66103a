package ports

import "github.com/ersonp/thanepark/internal/domain/entities"

// ChangeObserver is notified synchronously after the model state moves.
// Observers must not call back into the model.
type ChangeObserver interface {
	OnChange(change entities.Change)
}

// ChangeObserverFunc adapts a function to ChangeObserver.
type ChangeObserverFunc func(change entities.Change)

// OnChange calls f(change).
func (f ChangeObserverFunc) OnChange(change entities.Change) {
	f(change)
}
