package database

import "errors"

// ErrNotFound is returned by Load when no blob exists under the key.
var ErrNotFound = errors.New("database: key not found")

// Backend stores one JSON blob per fixed string key. It is the server-side
// analogue of browser local storage: whole-value reads and writes, no partial
// updates, no expiry.
type Backend interface {
	Load(key string) ([]byte, error)
	Store(key string, value []byte) error
}
