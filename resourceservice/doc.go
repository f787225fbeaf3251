// Package resourceservice implements the cache-fronted CRUD service over
// the upstream resource API.
//
// # Caching Contract
//
// The service keeps one in-memory snapshot: an unordered list of resources
// plus the time it was last refreshed, guarded by a single reader/writer
// lock. The rules are:
//
//   - the snapshot is stale once strictly older than StaleAfter (5 minutes)
//   - List serves from a fresh snapshot, applying filter and limit locally;
//     a stale snapshot triggers an upstream fetch whose reply overwrites
//     the snapshot wholesale
//   - Get serves from a fresh snapshot when the ID is present; otherwise it
//     asks the upstream directly and does NOT write the result back
//   - every successful Create, Update or Delete forces the snapshot stale
//
// A brand-new service starts stale, so the first List always goes upstream.
//
// # Write Path
//
// Create and Update validate the payload (model rules), run the processor
// pipeline, and submit. Update additionally requires the path ID to equal
// the resource's ID and replaces the resource in full. Delete issues a
// DELETE against resources/{id}.
//
// # Processors
//
// A Registry holds Processor implementations keyed by resource type, with
// model.TypeAny as the wildcard bucket that runs after the type-specific
// ones. DefaultRegistry wires the stock set: document content trimming,
// user email checks and the audit stamp.
//
// # Errors
//
// The apiclient vocabulary is translated exactly once (mapAPIError):
// 404 becomes *NotFoundError, 401/403 become *PermissionError, undecodable
// bodies become *ProcessingError, everything else is wrapped in
// *UpstreamError. Validation failures never reach the network and surface
// as *ValidationError.
//
// There is no retry or backpressure in this path; the retry package exists
// for callers who want to wrap individual calls.
package resourceservice
