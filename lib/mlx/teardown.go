package mlx

// teardown releases resources in the reverse order they were acquired.
type teardown struct {
	steps []func()
}

func (t *teardown) push(release func()) {
	t.steps = append(t.steps, release)
}

// run releases everything pushed so far and empties the stack, so a second
// run is a no-op.
func (t *teardown) run() {
	for i := len(t.steps) - 1; i >= 0; i-- {
		t.steps[i]()
	}
	t.steps = nil
}
