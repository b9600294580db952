// Package storage opens the local database, applies migrations and exposes
// the typed Record Store used by the rest of ImgKeeper.
//
// Every value is a whole JSON document stored under a fixed key (see the
// Key* constants in package common). Reads return the documented default
// when a key has never been written. There is no partial update: callers
// load a value, change it in memory and save it back.
//
// Atomic groups several saves into one SQL transaction; folder rename and
// delete cascades rely on it.
package storage
