package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstSuccessStopsAtFirstNonEmpty(t *testing.T) {
	var calls []string
	mk := func(name string, res []int, err error) attempt[int] {
		return attempt[int]{name: name, run: func(context.Context) ([]int, error) {
			calls = append(calls, name)
			return res, err
		}}
	}

	res, name, err := firstSuccess(context.Background(), []attempt[int]{
		mk("failing", nil, errors.New("boom")),
		mk("empty", []int{}, nil),
		mk("winner", []int{1, 2}, nil),
		mk("never", []int{3}, nil),
	})

	require.NoError(t, err)
	require.Equal(t, "winner", name)
	require.Equal(t, []int{1, 2}, res)
	require.Equal(t, []string{"failing", "empty", "winner"}, calls)
}

func TestFirstSuccessJoinsErrors(t *testing.T) {
	errA := errors.New("a down")
	res, name, err := firstSuccess(context.Background(), []attempt[int]{
		{name: "a", run: func(context.Context) ([]int, error) { return nil, errA }},
		{name: "b", run: func(context.Context) ([]int, error) { return nil, nil }},
	})

	require.Empty(t, res)
	require.Empty(t, name)
	require.ErrorIs(t, err, errA)
}

func TestFirstSuccessHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, _, err := firstSuccess(ctx, []attempt[int]{
		{name: "a", run: func(context.Context) ([]int, error) {
			t.Fatal("attempt must not run on a cancelled context")
			return nil, nil
		}},
	})
	require.Empty(t, res)
	require.ErrorIs(t, err, context.Canceled)
}
