package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

const (
	keyView            = "fs_view"
	keySelectedCompany = "fs_selected_company"
	keyTab             = "fs_tab"
)

// SessionStore persists the navigation state next to the snapshot.
type SessionStore struct {
	slot Slot
}

func NewSessionStore(slot Slot) *SessionStore {
	return &SessionStore{slot: slot}
}

// Load returns the stored session. Missing or unknown values fall back to
// the defaults; the legacy "stack" tab becomes "accounts".
func (s *SessionStore) Load(ctx context.Context) (models.Session, error) {
	sess := models.DefaultSession()

	view, err := s.get(ctx, keyView)
	if err != nil {
		return sess, err
	}
	company, err := s.get(ctx, keySelectedCompany)
	if err != nil {
		return sess, err
	}
	tab, err := s.get(ctx, keyTab)
	if err != nil {
		return sess, err
	}

	if t, ok := models.ParseTab(tab); ok {
		sess.ActiveTab = t
	}
	if models.View(view) == models.ViewCompany && company != "" {
		sess.ActiveView = models.ViewCompany
		sess.SelectedCompanyID = company
	}
	return sess, nil
}

// Save stores sess.
func (s *SessionStore) Save(ctx context.Context, sess models.Session) error {
	if err := s.slot.Set(ctx, keyView, []byte(sess.ActiveView)); err != nil {
		return fmt.Errorf("save view: %w", err)
	}
	if err := s.slot.Set(ctx, keyTab, []byte(sess.ActiveTab)); err != nil {
		return fmt.Errorf("save tab: %w", err)
	}
	if sess.SelectedCompanyID == "" {
		if err := s.slot.Delete(ctx, keySelectedCompany); err != nil {
			return fmt.Errorf("clear selected company: %w", err)
		}
		return nil
	}
	if err := s.slot.Set(ctx, keySelectedCompany, []byte(sess.SelectedCompanyID)); err != nil {
		return fmt.Errorf("save selected company: %w", err)
	}
	return nil
}

// Clear removes every session key.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.slot.Delete(ctx, keyView, keySelectedCompany, keyTab)
}

func (s *SessionStore) get(ctx context.Context, key string) (string, error) {
	v, err := s.slot.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return string(v), nil
}
