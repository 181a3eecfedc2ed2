package dispatch_test

import (
	"fmt"
	"sync"

	"github.com/fr3nzy90/flib-go/pkg/scheduling/dispatch"
)

// Example demonstrates basic task dispatching.
func Example() {
	d, err := dispatch.New(1)
	if err != nil {
		panic(err)
	}
	defer d.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	d.Invoke(func() {
		fmt.Println("first")
		wg.Done()
	})
	d.Invoke(func() {
		fmt.Println("second")
		wg.Done()
	})

	wg.Wait()

	// Output:
	// first
	// second
}

// Example_priority demonstrates priority ordering of queued tasks.
func Example_priority() {
	d, err := dispatch.NewWithConfig(dispatch.Config{Executors: 1})
	if err != nil {
		panic(err)
	}
	defer d.Close()

	var wg sync.WaitGroup
	wg.Add(3)
	say := func(msg string) dispatch.Task {
		return func() {
			fmt.Println(msg)
			wg.Done()
		}
	}

	// Queued while disabled, so ordering is decided before dispatch begins.
	d.Invoke(say("routine"))
	d.InvokePriority(say("urgent"), 10)
	d.InvokePriority(say("important"), 5)

	d.Enable()
	wg.Wait()

	// Output:
	// urgent
	// important
	// routine
}

// ExampleHandle_Cancel demonstrates cancelling a pending task.
func ExampleHandle_Cancel() {
	d, err := dispatch.NewWithConfig(dispatch.Config{Executors: 1})
	if err != nil {
		panic(err)
	}
	defer d.Close()

	h := d.Invoke(func() {
		fmt.Println("never runs")
	})

	h.Cancel()
	fmt.Println("expired:", h.Expired())

	// Output:
	// expired: true
}
