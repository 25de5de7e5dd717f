// Package sqlite provides a SQLite-backed implementation of the
// DocumentStore port.
//
// The store uses WAL mode for concurrent readers, embedded SQL migrations,
// and serialises embedding vectors as little-endian float32 blobs. Chunk-set
// replacement runs inside a single transaction so readers never observe a
// mix of old and new chunks.
package sqlite
