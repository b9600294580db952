// Package history implements the upload history: an ordered list of records
// spread over folders.
//
// The package-level functions are pure. They never modify their input and
// return a new list. Manager wraps them in load-modify-save cycles against a
// storage.Store.
//
// Reorder rule: a record moved from position `from` to position `to` of its
// folder always ends up at index `to` of that folder. Dragging downward
// therefore inserts after the target and dragging upward inserts before it.
// After a reorder the folder's records follow all other records in the
// stored list.
package history
