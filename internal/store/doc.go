// Package store implements the domain state store: pure transitions that take
// a models.Snapshot plus an intent and return the next snapshot.
//
// # Overview
//
// Each collection is served by a generic Repository parametrized over its
// record and patch types. The shared add/merge/remove logic lives once in
// Repository; per-kind behavior (defaults, merge, cascades) is registered as
// hooks when the Store is built.
//
// # Cascades
//
//   - Adding an account also appends its companion subscription and records
//     its id in LinkedSubscriptionID.
//   - Updating an account re-synchronizes the linked subscription. Accounts
//     stored before links existed fall back to every subscription of the same
//     company named after the platform before the update.
//   - Deleting an account deletes the same subscriptions.
//   - Deleting a company deletes every record owned by it in all six
//     dependent collections, in the same transition.
//   - Every add/update/delete refreshes the owning company's lastModified.
//
// # No-ops
//
// Missing ids and a missing selected company are not failures: the input
// snapshot is returned unchanged together with an error wrapping
// common.ErrorNotFound or common.ErrNoCompanySelected, which callers may log
// or ignore.
//
// # Immutability
//
// Transitions never write into an existing backing array. Touched collections
// get fresh slices; untouched collections are shared with the previous
// snapshot.
package store
