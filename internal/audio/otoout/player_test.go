package otoout

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReserveCrash_CapsConcurrentCues(t *testing.T) {
	var p Player
	var granted atomic.Int32

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if p.reserveCrash() {
				granted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(maxCrashes), granted.Load())
	assert.Equal(t, int32(maxCrashes), p.crashes.Load())

	// A finished cue frees its slot.
	p.crashes.Add(-1)
	assert.True(t, p.reserveCrash())
	assert.False(t, p.reserveCrash())
}
