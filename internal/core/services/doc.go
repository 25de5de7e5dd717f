// Package services implements the driving port interfaces.
// Services contain the core business logic - upload, ingestion and
// retrieval - and orchestrate calls to driven ports (adapters).
package services
