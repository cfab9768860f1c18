package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	t.Run("round trips through context", func(t *testing.T) {
		profile, _ := NewProfile()
		ctx := NewCtxWithProfile(context.Background(), profile)

		got, _ := GetProfile(ctx)
		require.Same(t, profile, got)
	})

	t.Run("plain string key does not collide", func(t *testing.T) {
		profile, _ := NewProfile()
		//lint:ignore SA1029 asserting the typed key is distinct from its string value
		ctx := context.WithValue(context.Background(), "performanceProfile", profile)

		got, _ := GetProfile(ctx)
		require.NotSame(t, profile, got)
		require.Empty(t, got.Spans)
	})

	t.Run("spans record durations", func(t *testing.T) {
		profile, endProfile := NewProfile()
		_, endSpan := profile.StartNewSpan("compute index")
		endSpan()
		profile.StartNewSpan("store index")
		endProfile()

		durations := profile.Durations()
		require.Len(t, durations, 2)
		require.Contains(t, durations, "compute index")
		require.NotNil(t, profile.Total)
	})
}
