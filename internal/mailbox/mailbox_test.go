package mailbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutOverwrites(t *testing.T) {
	m := New[int]()
	m.Put(1)
	m.Put(2)

	got, ok := m.Take()
	require.True(t, ok)
	assert.Equal(t, 2, got, "latest job wins")

	assert.Nil(t, m.TryTake(), "slot is cleared after Take")
}

func TestTryTakeEmpty(t *testing.T) {
	m := New[string]()
	assert.Nil(t, m.TryTake())
}

func TestTakeBlocksUntilPut(t *testing.T) {
	m := New[string]()

	done := make(chan string)
	go func() {
		job, ok := m.Take()
		assert.True(t, ok)
		done <- job
	}()

	select {
	case <-done:
		t.Fatal("Take returned before Put")
	case <-time.After(20 * time.Millisecond):
	}

	m.Put("job")

	select {
	case got := <-done:
		require.Equal(t, "job", got)
	case <-time.After(time.Second):
		t.Fatal("Take never woke up")
	}
}

func TestCloseWakesBlockedTake(t *testing.T) {
	m := New[string]()

	done := make(chan bool)
	go func() {
		_, ok := m.Take()
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	m.Close()

	select {
	case ok := <-done:
		assert.False(t, ok, "Take on a closed empty mailbox reports no job")
	case <-time.After(time.Second):
		t.Fatal("Take never woke up after Close")
	}
}

func TestTakeDrainsPendingJobAfterClose(t *testing.T) {
	m := New[int]()
	m.Put(7)
	m.Close()

	got, ok := m.Take()
	require.True(t, ok)
	assert.Equal(t, 7, got)

	_, ok = m.Take()
	assert.False(t, ok)
}
