// Package services is the domain layer: each exported method implements one
// use case by combining the entity store, the authorization policy, and the
// notification dispatcher. Handlers translate the sentinel errors returned
// here into response codes.
package services

import (
	"errors"

	"github.com/synergy-dev/synergysphere/internal/notifier"
	"github.com/synergy-dev/synergysphere/internal/store"
)

type Service struct {
	store  *store.Store
	notify *notifier.Dispatcher
}

func New(store *store.Store, notify *notifier.Dispatcher) *Service {
	return &Service{store: store, notify: notify}
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}

	return err
}
