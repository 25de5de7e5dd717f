// Package extractors provides text extraction from uploaded artifacts.
//
// Each media type is handled by an Extractor implementation in a
// sub-package (plaintext, pdf). The Registry selects by declared MIME type
// and falls back to best-effort decoding for unknown types, so ingestion
// always completes - an undecodable binary yields zero chunks, not a stuck
// document.
package extractors
