package store

import (
	"fmt"

	"github.com/dmitrijs2005/founderstack/internal/common"
	"github.com/dmitrijs2005/founderstack/internal/models"
)

// Op is the mutation an Intent asks for.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpView   Op = "view"
)

// Intent is one user action against the snapshot. Patch must be the patch
// type of Kind (value or pointer) or nil.
type Intent struct {
	Kind  models.Kind
	Op    Op
	ID    string
	Patch any
}

// Apply runs the intent and returns the next snapshot. On any error the
// input snapshot is returned unchanged.
func (s *Store) Apply(snap models.Snapshot, sess models.Session, in Intent) (models.Snapshot, error) {
	if in.Op == OpView {
		if in.Kind != models.KindCompany {
			return snap, fmt.Errorf("%s %s: %w", in.Op, in.Kind, common.ErrUnknownOp)
		}
		return s.MarkViewed(snap, in.ID)
	}

	d, ok := s.byKind[in.Kind]
	if !ok {
		return snap, fmt.Errorf("%q: %w", in.Kind, common.ErrUnknownKind)
	}

	switch in.Op {
	case OpAdd:
		return d.add(snap, sess, in.Patch)
	case OpUpdate:
		return d.update(snap, in.ID, in.Patch)
	case OpDelete:
		return d.delete(snap, in.ID)
	default:
		return snap, fmt.Errorf("%q: %w", in.Op, common.ErrUnknownOp)
	}
}
