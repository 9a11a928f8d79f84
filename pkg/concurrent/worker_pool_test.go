package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolProcessesEveryJob(t *testing.T) {
	wp := NewWorkerPool[int, int](4, 100)
	wp.Start(func(job int) int { return job * job })
	for i := 0; i < 100; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	sum := 0
	count := 0
	for res := range wp.CollectResults() {
		sum += res
		count++
	}
	assert.Equal(t, 100, count)
	assert.Equal(t, 328350, sum)
}

func TestNewWorkerPoolDefaultsToCpuCount(t *testing.T) {
	wp := NewWorkerPool[int, int](0, 1)
	assert.Positive(t, wp.NumWorkers())
}

func TestProcessAll(t *testing.T) {
	jobs := []string{"a", "bb", "ccc", "dddd"}
	lengths := ProcessAll(2, jobs, func(s string) int { return len(s) })
	require.Len(t, lengths, len(jobs))

	sort.Ints(lengths)
	assert.Equal(t, []int{1, 2, 3, 4}, lengths)
}

func TestProcessAllEmpty(t *testing.T) {
	res := ProcessAll(3, []int{}, func(i int) int { return i })
	assert.Empty(t, res)
}
