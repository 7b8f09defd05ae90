package mirror

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slicePayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []slicePayload{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, m.Save(ctx, SliceCart, in))

	var out []slicePayload
	require.True(t, m.Load(ctx, SliceCart, &out))
	assert.Equal(t, in, out)
}

func TestMemory_AbsentSlice(t *testing.T) {
	m := NewMemory()

	var out []slicePayload
	assert.False(t, m.Load(context.Background(), SliceCart, &out))
	assert.Nil(t, out)
}

func TestMemory_CorruptSliceFallsBackToDefault(t *testing.T) {
	m := NewMemory()
	m.SetRaw(SlicePoints, []byte("{not json"))

	points := 42 // caller's default must survive
	assert.False(t, m.Load(context.Background(), SlicePoints, &points))
	assert.Equal(t, 42, points)
}

func TestMemory_OverwriteKeepsLatest(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Save(ctx, SlicePoints, 10))
	require.NoError(t, m.Save(ctx, SlicePoints, 70))

	var points int
	require.True(t, m.Load(ctx, SlicePoints, &points))
	assert.Equal(t, 70, points)
}

func TestMemory_SlicesAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Save(ctx, SlicePoints, 5))
	require.NoError(t, m.Save(ctx, SliceUser, slicePayload{Name: "ana"}))

	var points int
	require.True(t, m.Load(ctx, SlicePoints, &points))
	assert.Equal(t, 5, points)

	var user slicePayload
	require.True(t, m.Load(ctx, SliceUser, &user))
	assert.Equal(t, "ana", user.Name)
}
