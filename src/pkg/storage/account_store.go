package storage

import (
	"daybook/local-app/src/pkg/model"
)

// AccountStore defines the persistence operations of the credential registry.
type AccountStore interface {
	AccountsLoad() ([]model.Account, error)
	AccountsSave(accounts []model.Account) error
}

// AccountStorage implements AccountStore on top of the entity store.
type AccountStorage struct {
	store *Store
}

// NewAccountStorage creates a new AccountStorage instance.
func NewAccountStorage(store *Store) *AccountStorage {
	return &AccountStorage{store: store}
}

// AccountsLoad returns every registered account.
func (s *AccountStorage) AccountsLoad() ([]model.Account, error) {
	return LoadCollection[model.Account](s.store, KeyAccounts)
}

// AccountsSave replaces the registry with the given accounts.
func (s *AccountStorage) AccountsSave(accounts []model.Account) error {
	return SaveCollection(s.store, KeyAccounts, accounts)
}
