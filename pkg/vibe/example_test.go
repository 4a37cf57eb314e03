package vibe_test

import (
	"fmt"

	"github.com/matzehuels/vibegrid/pkg/vibe"
)

func ExampleGet() {
	c := vibe.Get("minimal")
	fmt.Println(c.Name, c.MaxElements, c.Symmetry)

	// Unknown ids fall back to the default profile.
	fmt.Println(vibe.Get("unheard-of").ID)
	// Output:
	// Minimal 5 strict
	// modern
}
