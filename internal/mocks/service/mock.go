// Package service provides testify mocks of the domain service interfaces.
package service

import "github.com/stretchr/testify/mock"

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func returned[T any](args mock.Arguments, index int) T {
	value, _ := args.Get(index).(T)

	return value
}
