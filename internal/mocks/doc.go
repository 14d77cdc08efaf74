// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields (CreateFn, ListFn, ...) that tests
// set to script behavior, plus call counters where tests need to assert
// that an operation was or was not reached. Keeping them here avoids
// redefining the same inline mocks across test packages.
package mocks
