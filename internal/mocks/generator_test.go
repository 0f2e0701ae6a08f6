package mocks_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/curricuforge/internal/generation"
	"github.com/phrazzld/curricuforge/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ generation.Generator = (*mocks.MockGenerator)(nil)

func TestMockGeneratorDefaults(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockGeneratorWithText("curriculum")
	text, err := m.Generate(context.Background(), "prompt one")

	require.NoError(t, err)
	assert.Equal(t, "curriculum", text)
	assert.Equal(t, 1, m.CallCount())
	assert.Equal(t, []string{"prompt one"}, m.Prompts())
}

func TestMockGeneratorError(t *testing.T) {
	t.Parallel()

	want := errors.New("quota exceeded")
	m := mocks.NewMockGeneratorWithError(want)

	_, err := m.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, want)
}

func TestMockGeneratorConcurrentCalls(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockGeneratorWithText("ok")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Generate(context.Background(), "p")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, m.CallCount())
}

func TestBlockingMockGenerator(t *testing.T) {
	t.Parallel()

	m := mocks.NewBlockingMockGenerator()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.Generate(ctx, "p")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NoError(t, m.Close())
	assert.Equal(t, 1, m.CloseCount())
}
