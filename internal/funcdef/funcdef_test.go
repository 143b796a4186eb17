package funcdef

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/typegridgo/internal/policy"
	"github.com/vk/typegridgo/internal/runtimes/deno"
	"github.com/vk/typegridgo/internal/typedef"
)

var contactMat = deno.Module("send_in_blue_send.ts").Import("default")

func contactInput() typedef.Type {
	return typedef.Struct(
		typedef.Field{Name: "name", Type: typedef.String()},
		typedef.Field{Name: "email", Type: typedef.Email()},
	)
}

func contactOutput() typedef.Type {
	return typedef.Struct(
		typedef.Field{Name: "success", Type: typedef.Boolean()},
		typedef.Field{Name: "error", Type: typedef.String().Optional()},
	)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid binding defaults to weight 1", func(t *testing.T) {
		fn, err := New(contactInput(), contactOutput(), contactMat)
		require.NoError(t, err)
		assert.Equal(t, float64(1), fn.Weight())
		assert.Empty(t, fn.Policies())
		assert.Equal(t, "deno:send_in_blue_send.ts#default", fn.Materializer().String())
	})

	t.Run("rejects non-struct inputs", func(t *testing.T) {
		for _, tt := range []struct {
			name  string
			input typedef.Type
		}{
			{"string", typedef.String()},
			{"boolean", typedef.Boolean()},
			{"optional struct", contactInput().Optional()},
		} {
			t.Run(tt.name, func(t *testing.T) {
				_, err := New(tt.input, contactOutput(), contactMat)
				assert.ErrorIs(t, err, ErrInputNotStruct)
			})
		}
	})

	t.Run("surfaces poisoned descriptors", func(t *testing.T) {
		bad := typedef.Struct(typedef.Field{Name: "flag", Type: typedef.Boolean().Secret()})
		_, err := New(bad, contactOutput(), contactMat)
		assert.ErrorIs(t, err, typedef.ErrTypeMismatch)

		_, err = New(contactInput(), typedef.Boolean().Raw("x"), contactMat)
		require.Error(t, err)
		assert.ErrorContains(t, err, "output")
	})

	t.Run("a dangling materializer still constructs", func(t *testing.T) {
		// Existence of the referenced member is the runtime's concern.
		mat := deno.Module("does_not_exist.ts").Import("nope")
		_, err := New(contactInput(), contactOutput(), mat)
		assert.NoError(t, err)
	})
}

func TestWeighted(t *testing.T) {
	t.Parallel()

	fn, err := New(contactInput(), contactOutput(), contactMat)
	require.NoError(t, err)

	t.Run("derives a new binding", func(t *testing.T) {
		heavy, err := fn.Weighted(2)
		require.NoError(t, err)
		assert.Equal(t, float64(2), heavy.Weight())
		assert.Equal(t, float64(1), fn.Weight(), "base binding must stay untouched")
	})

	t.Run("rejects non-positive weights", func(t *testing.T) {
		for _, w := range []float64{0, -1} {
			_, err := fn.Weighted(w)
			assert.ErrorIs(t, err, ErrNonPositiveWeight)
		}
	})
}

func TestWithPolicies(t *testing.T) {
	t.Parallel()

	fn, err := New(contactInput(), contactOutput(), contactMat)
	require.NoError(t, err)

	allow := policy.AllowAll()
	derived := fn.WithPolicies(allow)

	require.Len(t, derived.Policies(), 1)
	assert.Equal(t, policy.AllowAllName, derived.Policies()[0].Name())
	assert.Empty(t, fn.Policies(), "base binding must stay untouched")

	internal, err := policy.New("internal_only", policy.DeciderFunc(
		func(ctx context.Context, req policy.Request) (bool, error) { return false, nil },
	))
	require.NoError(t, err)

	extended := derived.WithPolicies(internal)
	require.Len(t, extended.Policies(), 2)
	assert.Equal(t, "internal_only", extended.Policies()[1].Name())
	assert.Len(t, derived.Policies(), 1, "derived binding must stay untouched")
}
