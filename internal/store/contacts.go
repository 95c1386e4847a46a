package store

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// CreateContact validates and appends a new contact. The id and DateAdded
// are assigned here; values supplied by the caller are ignored.
func (s *Store) CreateContact(c types.Contact) (types.Contact, error) {
	if err := s.checkStruct(c); err != nil {
		return types.Contact{}, err
	}

	now := s.now()
	c.ID = mintID(now, func(id int64) bool {
		return indexByID(s.ws.Contacts, contactID, id) >= 0
	})
	c.DateAdded = now

	s.ws.Contacts = append(s.ws.Contacts, c)
	s.logActivity(fmt.Sprintf("Added contact %s", c.FullName()), types.IconContact)
	if err := s.flush(); err != nil {
		return types.Contact{}, err
	}

	s.log.Debug("contact created", zap.Int64("id", c.ID))
	return c, nil
}

// UpdateContact replaces the contact with the given id in place, preserving
// its original DateAdded. Returns ErrNotFound when no contact has that id.
func (s *Store) UpdateContact(id int64, c types.Contact) (types.Contact, error) {
	i := indexByID(s.ws.Contacts, contactID, id)
	if i < 0 {
		return types.Contact{}, types.ErrNotFound
	}
	if err := s.checkStruct(c); err != nil {
		return types.Contact{}, err
	}

	c.ID = id
	c.DateAdded = s.ws.Contacts[i].DateAdded
	s.ws.Contacts[i] = c

	s.logActivity(fmt.Sprintf("Updated contact %s", c.FullName()), types.IconEdit)
	if err := s.flush(); err != nil {
		return types.Contact{}, err
	}
	return c, nil
}

// DeleteContact removes the contact with the given id. Unknown ids return
// ErrNotFound with no state change.
func (s *Store) DeleteContact(id int64) error {
	i := indexByID(s.ws.Contacts, contactID, id)
	if i < 0 {
		return types.ErrNotFound
	}

	name := s.ws.Contacts[i].FullName()
	s.ws.Contacts = slices.Delete(s.ws.Contacts, i, i+1)

	s.logActivity(fmt.Sprintf("Deleted contact %s", name), types.IconDelete)
	return s.flush()
}

// GetContact returns the contact with the given id.
func (s *Store) GetContact(id int64) (types.Contact, error) {
	i := indexByID(s.ws.Contacts, contactID, id)
	if i < 0 {
		return types.Contact{}, types.ErrNotFound
	}
	return s.ws.Contacts[i], nil
}

func contactID(c types.Contact) int64 { return c.ID }
