package syncval_test

import (
	"fmt"
	"time"

	"github.com/fr3nzy90/flib-go/pkg/syncing/syncval"
)

// Example demonstrates waiting for a condition on a shared value.
func Example() {
	v := syncval.New(0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if v.Wait(func(n int) bool { return n >= 3 }) {
			fmt.Println("reached", v.Load())
		}
	}()

	for i := 1; i <= 3; i++ {
		v.Store(i)
		v.Broadcast()
	}
	<-done

	// Output:
	// reached 3
}

// ExampleValue_Swap demonstrates atomically exchanging the value.
func ExampleValue_Swap() {
	v := syncval.New("old")
	previous := v.Swap("new")

	fmt.Println(previous)
	fmt.Println(v.Load())

	// Output:
	// old
	// new
}

// ExampleValue_WaitFor demonstrates a bounded wait.
func ExampleValue_WaitFor() {
	v := syncval.New(false)

	ok := v.WaitFor(10*time.Millisecond, func(ready bool) bool { return ready })
	fmt.Println("ready:", ok)

	// Output:
	// ready: false
}
