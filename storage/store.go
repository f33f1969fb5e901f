// Package storage provides durable persistence for whole collections. Every
// mutation in the repositories rewrites its entire collection through a Store
// before the operation is considered complete (write-through).
package storage

// Store loads and saves one named collection as a single document.
type Store interface {
	// Load decodes the named collection into v. A collection that has never
	// been saved decodes as the zero value, not an error.
	Load(collection string, v any) error
	// Save overwrites the named collection with the encoding of v.
	Save(collection string, v any) error
}
