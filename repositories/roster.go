//go:generate go run go.uber.org/mock/mockgen -source=roster.go -destination=../mocks/mock_roster_repository.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"log/slog"

	"lunch-roll/domain"
	errs "lunch-roll/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	SchemaVersion    = 2
	DefaultGroupSize = 2

	participantPrefix = "participant:"
	sessionPrefix     = "session:"
	groupSizeKey      = "settings:group_size"
	pendingKey        = "pending:allocation"
	schemaVersionKey  = "meta:schema_version"
)

type IRosterRepository interface {
	SaveParticipant(participant domain.Participant) error
	GetParticipant(name string) (domain.Participant, error)
	DeleteParticipant(name string) error
	ListParticipants() ([]domain.Participant, error)
	ClearParticipants() error
	GetGroupSize() (int, error)
	SetGroupSize(size int) error
	SavePending(allocation domain.Allocation) error
	GetPending() (domain.Allocation, error)
	ClearPending() error
	AppendSession(session domain.Session) error
	ListSessions() ([]domain.Session, error)
}

type RosterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRosterRepository(db *badger.DB, log *slog.Logger) RosterRepository {
	return RosterRepository{db: db, log: log}
}

func participantKey(name string) []byte {
	return []byte(participantPrefix + domain.NameKey(name))
}

// SaveParticipant inserts or replaces the participant stored under the
// case-folded name.
func (r RosterRepository) SaveParticipant(participant domain.Participant) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(participantKey(participant.Name), marshalParticipant(participant))
	})
}

func (r RosterRepository) GetParticipant(name string) (domain.Participant, error) {
	var participant domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(participantKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			participant, err = unmarshalParticipant(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Participant{}, fmt.Errorf("%w: %q", errs.ErrParticipantNotFound, name)
	}
	return participant, err
}

func (r RosterRepository) DeleteParticipant(name string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := participantKey(name)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", errs.ErrParticipantNotFound, name)
		}
		return txn.Delete(key)
	})
}

// ListParticipants scans the participant prefix. Keys hold the lower-cased
// name, so the result is already in case-insensitive alphabetical order.
func (r RosterRepository) ListParticipants() ([]domain.Participant, error) {
	var participants []domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(participantPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				participant, err := unmarshalParticipant(val)
				if err != nil {
					return err
				}
				participants = append(participants, participant)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return participants, err
}

func (r RosterRepository) ClearParticipants() error {
	return r.db.Update(func(txn *badger.Txn) error {
		prefix := []byte(participantPrefix)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetGroupSize returns DefaultGroupSize until a size has been stored.
func (r RosterRepository) GetGroupSize() (int, error) {
	size := DefaultGroupSize
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(groupSizeKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			size, err = unmarshalInt(val)
			return err
		})
	})
	return size, err
}

func (r RosterRepository) SetGroupSize(size int) error {
	if size < 2 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidGroupSize, size)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(groupSizeKey), marshalInt(size))
	})
}

// SavePending keeps the last rolled allocation until it is committed.
func (r RosterRepository) SavePending(allocation domain.Allocation) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(pendingKey), marshalAllocation(allocation))
	})
}

// GetPending returns nil when nothing has been rolled since the last commit.
func (r RosterRepository) GetPending() (domain.Allocation, error) {
	var allocation domain.Allocation
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(pendingKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			allocation, err = unmarshalAllocation(val)
			return err
		})
	})
	return allocation, err
}

func (r RosterRepository) ClearPending() error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(pendingKey))
	})
}

// AppendSession stores a committed session under
// "session:{unixnano padded to 19 digits}:{uuid}" so a prefix scan returns
// sessions in commit order.
func (r RosterRepository) AppendSession(session domain.Session) error {
	key := fmt.Sprintf("%s%019d:%s", sessionPrefix, session.CommittedAt.UnixNano(), session.ID)
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); err == nil {
			return fmt.Errorf("session %s already committed", session.ID)
		}
		return txn.Set([]byte(key), marshalSession(session))
	})
}

// ListSessions returns every committed session, oldest first.
// Records that fail to decode are skipped.
func (r RosterRepository) ListSessions() ([]domain.Session, error) {
	var sessions []domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(sessionPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				session, err := unmarshalSession(val)
				if err != nil {
					r.log.Warn("Skipping unreadable session", "key", string(item.Key()), "error", err)
					return nil
				}
				sessions = append(sessions, session)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return sessions, err
}

// EnsureSchema stamps a fresh store with SchemaVersion and refuses stores
// written by a newer version.
func (r RosterRepository) EnsureSchema() (int, error) {
	version := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(schemaVersionKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			version = SchemaVersion
			return txn.Set([]byte(schemaVersionKey), marshalInt(SchemaVersion))
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			version, err = unmarshalInt(val)
			return err
		})
	})
	if err != nil {
		return 0, err
	}
	if version > SchemaVersion {
		return version, fmt.Errorf("store schema version %d is newer than supported version %d", version, SchemaVersion)
	}
	return version, nil
}
