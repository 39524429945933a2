package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"grubdash/internal/core/application/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trace struct {
	visited []string
}

func record(name string) pipeline.Stage[*trace] {
	return func(_ context.Context, tr *trace) error {
		tr.visited = append(tr.visited, name)
		return nil
	}
}

func fail(name string, err error) pipeline.Stage[*trace] {
	return func(_ context.Context, tr *trace) error {
		tr.visited = append(tr.visited, name)
		return err
	}
}

func TestChain_Run(t *testing.T) {
	t.Run("runs stages in declaration order", func(t *testing.T) {
		tr := &trace{}

		err := pipeline.New(record("exists"), record("id"), record("fields"), record("handler")).Run(t.Context(), tr)

		require.NoError(t, err)
		assert.Equal(t, []string{"exists", "id", "fields", "handler"}, tr.visited)
	})

	t.Run("stops at the first failing stage", func(t *testing.T) {
		tr := &trace{}
		boom := errors.New("Dish must include a name.")

		err := pipeline.New(record("data"), fail("name", boom), record("price"), record("handler")).Run(t.Context(), tr)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"data", "name"}, tr.visited)
	})

	t.Run("empty chain succeeds", func(t *testing.T) {
		require.NoError(t, pipeline.New[*trace]().Run(t.Context(), &trace{}))
	})

	t.Run("stages see data attached by earlier stages", func(t *testing.T) {
		type scope struct{ resolved string }
		attach := func(_ context.Context, s *scope) error {
			s.resolved = "order-1"
			return nil
		}
		var seen string
		read := func(_ context.Context, s *scope) error {
			seen = s.resolved
			return nil
		}

		require.NoError(t, pipeline.New[*scope](attach, read).Run(t.Context(), &scope{}))
		assert.Equal(t, "order-1", seen)
	})
}

func TestChain_Then(t *testing.T) {
	base := pipeline.New(record("a"))
	extended := base.Then(record("b"), record("c"))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 3, extended.Len())

	tr := &trace{}
	require.NoError(t, extended.Run(t.Context(), tr))
	assert.Equal(t, []string{"a", "b", "c"}, tr.visited)
}

func TestMap(t *testing.T) {
	stages := pipeline.Map([]string{"name", "description", "price"}, record)

	tr := &trace{}
	require.NoError(t, pipeline.New(stages...).Run(t.Context(), tr))
	assert.Equal(t, []string{"name", "description", "price"}, tr.visited)
}
