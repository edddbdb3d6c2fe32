// Package corpus owns the bundled pattern dataset and its in-memory
// representation.
//
// The dataset is a YAML document embedded into the binary at build time.
// Load parses it once at startup, validates every record against the corpus
// invariants (positive unique id, non-empty title and body, category from the
// fixed enumeration), and builds lookup indices:
//
//	store, err := corpus.Load()
//	if err != nil {
//	    // DataIntegrityError: refuse to serve
//	    log.Fatal(err)
//	}
//
//	all := store.All()                       // dataset order
//	sec, _ := store.ByCategory("security")   // O(1) category lookup
//	p, ok := store.Get(42)                   // O(1) id lookup
//
// The Store is immutable after Load returns. Nothing in the process mutates
// it, so every accessor is safe for concurrent use without synchronization.
//
// A malformed dataset (duplicate id, missing field, unknown category) fails
// Load with an error wrapping types.ErrDataIntegrity. This is fatal by
// policy: serving queries over a corrupt corpus is worse than not starting.
package corpus
