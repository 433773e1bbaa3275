package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNop_PassesContextAndError(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	boom := errors.New("boom")

	m := NewNop()

	err := m.Do(ctx, func(got context.Context) error {
		assert.Equal(t, "v", got.Value(key{}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	called := false
	err = m.DoWithSettings(ctx, nil, func(context.Context) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
