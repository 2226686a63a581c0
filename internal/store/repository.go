package store

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/common"
	"github.com/dmitrijs2005/founderstack/internal/models"
)

// Repository serves one snapshot collection.
type Repository[T models.Record, P any] struct {
	kind models.Kind
	st   *Store

	// ownerless repositories create records that own themselves (companies).
	ownerless bool

	list  func(models.Snapshot) []T
	set   func(*models.Snapshot, []T)
	build func(id, companyID string, p P, now time.Time) T
	merge func(T, P) T

	afterAdd    func(next *models.Snapshot, rec T, now time.Time)
	afterUpdate func(next *models.Snapshot, before T, p P)
	afterDelete func(next *models.Snapshot, rec T)
}

// Kind returns the collection kind.
func (r *Repository[T, P]) Kind() models.Kind { return r.kind }

// List returns the collection in insertion order.
func (r *Repository[T, P]) List(snap models.Snapshot) []T { return r.list(snap) }

// Get returns the record with the given id.
func (r *Repository[T, P]) Get(snap models.Snapshot, id string) (T, bool) {
	items := r.list(snap)
	if i := indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Add creates a record for the selected company from p, filling defaults.
func (r *Repository[T, P]) Add(snap models.Snapshot, sess models.Session, p P) (models.Snapshot, error) {
	companyID := sess.SelectedCompanyID
	if !r.ownerless && (companyID == "" || !snap.HasCompany(companyID)) {
		return snap, fmt.Errorf("add %s: %w", r.kind, common.ErrNoCompanySelected)
	}

	now := r.st.now()
	id := r.st.newID()
	if r.ownerless {
		companyID = id
	}

	rec := r.build(id, companyID, p, now)

	next := snap
	r.set(&next, appended(r.list(snap), rec))
	if r.afterAdd != nil {
		r.afterAdd(&next, rec, now)
	}
	r.st.touch(&next, companyID, now)
	return next, nil
}

// Update merges p into the record with the given id.
func (r *Repository[T, P]) Update(snap models.Snapshot, id string, p P) (models.Snapshot, error) {
	items := r.list(snap)
	i := indexOf(items, id)
	if i < 0 {
		return snap, notFound(r.kind, id)
	}
	now := r.st.now()
	before := items[i]

	next := snap
	r.set(&next, replaced(items, i, r.merge(before, p)))
	if r.afterUpdate != nil {
		r.afterUpdate(&next, before, p)
	}
	r.st.touch(&next, before.OwnerID(), now)
	return next, nil
}

// Delete removes the record with the given id and runs its cascade.
func (r *Repository[T, P]) Delete(snap models.Snapshot, id string) (models.Snapshot, error) {
	items := r.list(snap)
	i := indexOf(items, id)
	if i < 0 {
		return snap, notFound(r.kind, id)
	}
	now := r.st.now()
	rec := items[i]

	rest, _ := without(items, func(it T) bool { return it.RecordID() == id })

	next := snap
	r.set(&next, rest)
	if r.afterDelete != nil {
		r.afterDelete(&next, rec)
	}
	r.st.touch(&next, rec.OwnerID(), now)
	return next, nil
}

func notFound(kind models.Kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, common.ErrorNotFound)
}

// dispatcher is the untyped face of a Repository used by Apply.
type dispatcher interface {
	add(snap models.Snapshot, sess models.Session, patch any) (models.Snapshot, error)
	update(snap models.Snapshot, id string, patch any) (models.Snapshot, error)
	delete(snap models.Snapshot, id string) (models.Snapshot, error)
}

func (r *Repository[T, P]) patch(v any) (P, error) {
	var zero P
	switch p := v.(type) {
	case nil:
		return zero, nil
	case P:
		return p, nil
	case *P:
		if p == nil {
			return zero, nil
		}
		return *p, nil
	default:
		return zero, fmt.Errorf("%s patch of type %T: %w", r.kind, v, common.ErrWrongPatch)
	}
}

func (r *Repository[T, P]) add(snap models.Snapshot, sess models.Session, v any) (models.Snapshot, error) {
	p, err := r.patch(v)
	if err != nil {
		return snap, err
	}
	return r.Add(snap, sess, p)
}

func (r *Repository[T, P]) update(snap models.Snapshot, id string, v any) (models.Snapshot, error) {
	p, err := r.patch(v)
	if err != nil {
		return snap, err
	}
	return r.Update(snap, id, p)
}

func (r *Repository[T, P]) delete(snap models.Snapshot, id string) (models.Snapshot, error) {
	return r.Delete(snap, id)
}
