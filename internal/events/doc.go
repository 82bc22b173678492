// Package events provides the task lifecycle events and the interfaces that
// decouple their producers from their consumers.
//
// The task service emits a TaskEvent after every successful create, update
// and delete. Handlers registered on an EventEmitter observe those events
// without the service knowing about them.
package events
