// Package migrate applies the embedded schema migrations of the storage
// backends with goose. Both the server's -migrate flag and its automatic
// startup migration go through Run.
package migrate
