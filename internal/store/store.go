// Package store implements the in-memory working set and the CRUD and query
// operations over it. A Store is an explicit context object: it is opened
// for one user, holds a detached copy of that user's dataset, and writes the
// copy back to the user's slot after every mutation.
package store

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/shopkeep/internal/master"
	"github.com/mesh-intelligence/shopkeep/pkg/types"
)

// Options configures a Store. Zero values select the production defaults.
type Options struct {
	// Logger receives operation-level debug logging. Defaults to zap.NewNop.
	Logger *zap.Logger

	// Now supplies timestamps for ids, DateAdded, activity entries, and
	// month-window stats. Defaults to time.Now.
	Now func() time.Time
}

// Store is the working set plus the machinery to mutate and flush it.
type Store struct {
	rec      *master.Record
	userID   int64
	ws       *types.Dataset
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time
}

// Open loads the user's dataset from its slot into a fresh working set.
func Open(rec *master.Record, userID int64, opts Options) (*Store, error) {
	ws, err := rec.LoadDataset(userID)
	if err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		rec:      rec,
		userID:   userID,
		ws:       ws,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      opts.Logger,
		now:      opts.Now,
	}, nil
}

// WorkingSet returns the live working set. Callers that need a snapshot
// should clone it; the query methods already return fresh slices.
func (s *Store) WorkingSet() *types.Dataset {
	return s.ws
}

// flush writes the working set back into the user's slot. Every mutating
// operation ends here, so a crash between operations never loses more than
// the operation in flight.
func (s *Store) flush() error {
	if err := s.rec.SaveDataset(s.userID, s.ws); err != nil {
		return fmt.Errorf("flushing working set: %w", err)
	}
	s.log.Debug("working set flushed", zap.Int64("user_id", s.userID))
	return nil
}

// checkStruct runs validator tags on the entity and maps failures onto
// ErrValidation with the offending fields in the message.
func (s *Store) checkStruct(entity any) error {
	err := s.validate.Struct(entity)
	if err == nil {
		return nil
	}
	if invalid, ok := err.(*validator.InvalidValidationError); ok {
		return invalid
	}
	fields := ""
	for _, fe := range err.(validator.ValidationErrors) {
		if fields != "" {
			fields += ", "
		}
		fields += fe.Field()
	}
	return fmt.Errorf("%w: %s", types.ErrValidation, fields)
}

// mintID returns a timestamp id not yet taken in the collection. Ids are
// Unix milliseconds, bumped on collision so two creations in the same
// millisecond still get distinct ids.
func mintID(now time.Time, taken func(int64) bool) int64 {
	id := now.UnixMilli()
	for taken(id) {
		id++
	}
	return id
}

// indexByID returns the position of the entity with the wanted id, or -1.
func indexByID[T any](items []T, id func(T) int64, want int64) int {
	for i, item := range items {
		if id(item) == want {
			return i
		}
	}
	return -1
}
