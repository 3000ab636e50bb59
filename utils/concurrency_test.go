package utils

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWork(t *testing.T) {
	seen := make([]atomic.Int32, 1000)
	var inits atomic.Int32

	err := SplitWork(4, uint64(len(seen)), func(workIndex uint64, routineIndex int) error {
		seen[workIndex].Add(1)
		return nil
	}, func(routines, routineIndex int) error {
		inits.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, inits.Load())
	for i := range seen {
		require.EqualValuesf(t, 1, seen[i].Load(), "work index %d", i)
	}
}

func TestSplitWork_Error(t *testing.T) {
	failure := errors.New("failure")
	err := SplitWork(2, 10, func(workIndex uint64, routineIndex int) error {
		if workIndex == 5 {
			return failure
		}
		return nil
	}, nil)
	require.ErrorIs(t, err, failure)
}

func TestSplitWork_SmallWork(t *testing.T) {
	var count atomic.Int32
	err := SplitWork(16, 3, func(workIndex uint64, routineIndex int) error {
		if routineIndex >= 3 {
			return errors.New("too many routines")
		}
		count.Add(1)
		return nil
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, 3, count.Load())
}
