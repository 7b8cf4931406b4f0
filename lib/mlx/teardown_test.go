package mlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeardownReverseOrder(t *testing.T) {
	var released []string
	var td teardown
	td.push(func() { released = append(released, "windowing") })
	td.push(func() { released = append(released, "window") })
	td.push(func() { released = append(released, "program") })

	td.run()
	assert.Equal(t, []string{"program", "window", "windowing"}, released)

	td.run()
	assert.Len(t, released, 3)
}
