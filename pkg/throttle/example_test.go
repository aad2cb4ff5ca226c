package throttle

import (
	"errors"
	"fmt"
	"time"
)

func ExampleThrottler_Check() {
	now := int64(0)
	tr, _ := New("email",
		WithThreshold(2),
		WithInitialDelay(10*time.Second),
		WithClock(func() int64 { return now }),
	)

	for i := 0; i < 3; i++ {
		if err := tr.Check("user@example.com"); err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println("allowed")
	}
	// Output:
	// allowed
	// allowed
	// Too many attempts! You must wait 10 seconds before trying again.
}

func ExampleDo() {
	now := int64(0)
	byEmail, _ := New("email",
		WithThreshold(1),
		WithClock(func() int64 { return now }),
	)

	login := func() error { return errors.New("wrong password") }
	guards := []Guard{{Throttler: byEmail, Key: "user@example.com"}}

	fmt.Println(Do(guards, login))
	fmt.Println(Do(guards, login))
	// Output:
	// wrong password
	// Too many attempts! You must wait 15 seconds before trying again.
}
