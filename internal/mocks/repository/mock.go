// Package repository provides testify mocks of the domain repository interfaces.
// Expectations are registered through EXPECT() and verified on test cleanup.
package repository

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// returned extracts a typed return value, yielding the zero value for nil.
func returned[T any](args mock.Arguments, index int) T {
	value, _ := args.Get(index).(T)

	return value
}
