// Package views computes derived values from a models.Snapshot: monthly burn,
// per-company counts, filtered lists and global search results.
//
// Every function is pure and cheap enough to recompute after each mutation.
package views
