// Package services provides the shared error taxonomy and context carriers
// used by the CLI and collaborator layers.
//
// Errors are tagged with sentinel markers (validation, configuration, not
// found) so callers can classify failures without string matching. Context
// carriers thread run, stage, and song identity through call chains for
// structured logging.
package services
