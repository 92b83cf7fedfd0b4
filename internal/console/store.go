package console

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const historyLimit = 20

// Store persists per-user permission grants and a bounded command history.
type Store struct {
	ds *datastore.DataStore
}

// HistoryRecord is one dispatched command, as remembered for a user.
type HistoryRecord struct {
	Command  string    `json:"command"`
	Line     string    `json:"line"`
	Datetime time.Time `json:"datetime"`
}

// userRecord is everything stored under one user key.
type userRecord struct {
	Permissions []string        `json:"permissions"`
	History     []HistoryRecord `json:"history"`
}

// NewStore opens (or creates) the datastore file.
func NewStore(filePath string) (*Store, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Store{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Store) Close() error {
	return s.ds.Close()
}

// getOrCreateUserRecord round-trips the stored value through JSON, since the
// datastore hands back plain maps after a reload.
func (s *Store) getOrCreateUserRecord(user string) (*userRecord, error) {
	data, exists := s.ds.Get(user)
	if !exists {
		return &userRecord{Permissions: []string{}}, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record userRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *userRecord: %w", err)
	}

	if record.Permissions == nil {
		record.Permissions = []string{}
	}
	if len(record.History) > historyLimit {
		record.History = record.History[len(record.History)-historyLimit:]
	}

	return &record, nil
}

// Grant adds a permission to a user. Granting twice is harmless.
func (s *Store) Grant(user, permission string) error {
	record, err := s.getOrCreateUserRecord(user)
	if err != nil {
		return err
	}
	for _, p := range record.Permissions {
		if p == permission {
			return nil
		}
	}
	record.Permissions = append(record.Permissions, permission)
	s.ds.Add(user, record)
	return nil
}

// Revoke removes a permission from a user.
func (s *Store) Revoke(user, permission string) error {
	record, err := s.getOrCreateUserRecord(user)
	if err != nil {
		return err
	}
	kept := record.Permissions[:0]
	for _, p := range record.Permissions {
		if p != permission {
			kept = append(kept, p)
		}
	}
	record.Permissions = kept
	s.ds.Add(user, record)
	return nil
}

// Permissions lists a user's grants.
func (s *Store) Permissions(user string) ([]string, error) {
	record, err := s.getOrCreateUserRecord(user)
	if err != nil {
		return nil, err
	}
	return record.Permissions, nil
}

// HasPermission reports whether the user holds the permission.
func (s *Store) HasPermission(user, permission string) bool {
	record, err := s.getOrCreateUserRecord(user)
	if err != nil {
		return false
	}
	for _, p := range record.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// AppendHistory records a dispatched command for a user, keeping the tail.
func (s *Store) AppendHistory(user string, rec HistoryRecord) error {
	record, err := s.getOrCreateUserRecord(user)
	if err != nil {
		return err
	}
	record.History = append(record.History, rec)
	if len(record.History) > historyLimit {
		record.History = record.History[len(record.History)-historyLimit:]
	}
	s.ds.Add(user, record)
	return nil
}

// History returns a user's recorded commands, oldest first.
func (s *Store) History(user string) ([]HistoryRecord, error) {
	record, err := s.getOrCreateUserRecord(user)
	if err != nil {
		return nil, err
	}
	return record.History, nil
}
