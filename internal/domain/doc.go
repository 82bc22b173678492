// Package domain contains the core business entities, value objects, and
// domain logic of the task tracker. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// The package defines the Task and Category records, the Priority and Status
// enumerations, the TaskPatch used to merge partial updates, and the error
// taxonomy every other layer maps onto.
package domain
