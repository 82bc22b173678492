// Package service contains the application-specific use cases of the task
// tracker. It orchestrates interactions between domain objects and the
// repositories defined in internal/store.
//
// Key components:
//
//   - CategoryCatalog resolves category names to catalog entries.
//   - TaskCodec turns the wire representation (TaskPayload) into a
//     domain.TaskPatch and renders tasks back.
//   - TaskService owns the task lifecycle: create, merge-update, delete and
//     the read paths, emitting a lifecycle event after every write.
//
// Store failures are translated into the domain error taxonomy here; the API
// layer never sees a store sentinel.
package service
