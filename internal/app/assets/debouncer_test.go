package assets

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_Trigger(t *testing.T) {
	var (
		mu            sync.Mutex
		called        int
		receivedFiles []string
	)

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		called++
		receivedFiles = files
	})
	defer d.Stop()

	d.Trigger("image1.txt")
	d.Trigger("image2.txt")
	d.Trigger("image1.txt")

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	sort.Strings(receivedFiles)
	assert.Equal(t, 1, called)
	assert.Equal(t, []string{"image1.txt", "image2.txt"}, receivedFiles)
}

func Test_Debouncer_ResetsOnTrigger(t *testing.T) {
	var (
		mu        sync.Mutex
		callCount int
	)

	d := NewDebouncer(80*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		callCount++
	})
	defer d.Stop()

	for i := 0; i < 4; i++ {
		d.Trigger("image1.txt")
		time.Sleep(20 * time.Millisecond)
	}

	mu.Lock()
	assert.Equal(t, 0, callCount)
	mu.Unlock()

	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, 1, callCount)
	mu.Unlock()
}

func Test_Debouncer_Stop(t *testing.T) {
	var (
		mu     sync.Mutex
		called bool
	)

	d := NewDebouncer(50*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()

		called = true
	})

	d.Trigger("image1.txt")
	d.Stop()
	d.Trigger("image2.txt")

	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	assert.False(t, called)
	mu.Unlock()
}
