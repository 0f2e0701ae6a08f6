// Package mocks provides hand-written test doubles shared across packages.
//
// MockGenerator stands in for a generation backend. It records every prompt
// it receives so tests can assert on prompt contents and on whether the
// backend was reached at all:
//
//	gen := mocks.NewMockGeneratorWithText("## Week 1")
//	client, _ := generation.NewClient(gen, logger, time.Second)
//	// ...
//	assert.Equal(t, 0, gen.CallCount())
//
// When adding a new mock to this package, expose function fields for each
// interface method and record calls under a mutex.
package mocks
