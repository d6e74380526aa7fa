package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Run("empty params yield empty filter", func(t *testing.T) {
		f, err := Compile(map[string]string{})

		require.NoError(t, err)
		assert.True(t, f.Empty())
	})

	t.Run("pagination keys are not predicates", func(t *testing.T) {
		f, err := Compile(map[string]string{
			ParamPageNum:  "3",
			ParamPageSize: "25",
		})

		require.NoError(t, err)
		assert.True(t, f.Empty())
	})

	t.Run("known keys compile", func(t *testing.T) {
		f, err := Compile(map[string]string{
			"title":  "go",
			"status": "publish",
		})

		require.NoError(t, err)
		assert.False(t, f.Empty())
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := Compile(map[string]string{"password": "x"})

		require.Error(t, err)
		var fieldErr *UnknownFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "password", fieldErr.Field)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("unknown key rejected even alongside known keys", func(t *testing.T) {
		_, err := Compile(map[string]string{
			"title":      "go",
			"like_count": "10",
		})

		var fieldErr *UnknownFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "like_count", fieldErr.Field)
	})
}

func TestFilter_Clause(t *testing.T) {
	t.Run("empty filter renders nothing", func(t *testing.T) {
		f, err := Compile(nil)
		require.NoError(t, err)

		clause, args := f.Clause("p", 1)

		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("status compiles to equality", func(t *testing.T) {
		f, err := Compile(map[string]string{"status": "draft"})
		require.NoError(t, err)

		clause, args := f.Clause("p", 1)

		assert.Equal(t, "p.status = $1", clause)
		assert.Equal(t, []any{"draft"}, args)
	})

	t.Run("text fields compile to contains", func(t *testing.T) {
		f, err := Compile(map[string]string{"summary": "weekly"})
		require.NoError(t, err)

		clause, args := f.Clause("p", 1)

		assert.Equal(t, "p.summary ILIKE $1", clause)
		assert.Equal(t, []any{"%weekly%"}, args)
	})

	t.Run("conditions are AND-joined in column order", func(t *testing.T) {
		f, err := Compile(map[string]string{
			"title":  "release",
			"status": "publish",
		})
		require.NoError(t, err)

		clause, args := f.Clause("p", 1)

		assert.Equal(t, "p.status = $1 AND p.title ILIKE $2", clause)
		assert.Equal(t, []any{"publish", "%release%"}, args)
	})

	t.Run("placeholders start at next", func(t *testing.T) {
		f, err := Compile(map[string]string{"content": "pgx"})
		require.NoError(t, err)

		clause, args := f.Clause("posts", 4)

		assert.Equal(t, "posts.content ILIKE $4", clause)
		assert.Equal(t, []any{"%pgx%"}, args)
	})
}
