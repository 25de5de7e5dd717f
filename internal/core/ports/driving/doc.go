// Package driving defines the interfaces through which the outside world
// calls INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; driving adapters (CLI, drop-folder watcher)
// consume them. The HTTP surface that would normally invoke these operations
// is an external concern and lives outside this repository's core contract.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package, any driven port implementation
package driving
