package carve_test

import (
	"fmt"

	"github.com/matzehuels/mazewalk/pkg/maze"
	"github.com/matzehuels/mazewalk/pkg/maze/carve"
)

func ExampleGenerate() {
	g, _ := maze.New(4, 5)
	stats, err := carve.Generate(g, carve.NewSeeded(1234))
	if err != nil {
		panic(err)
	}

	fmt.Println("Passages:", g.Passages())
	fmt.Println("Opened:", stats.Passages)
	fmt.Println("Symmetric:", g.CheckSymmetry() == nil)
	// Output:
	// Passages: 19
	// Opened: 19
	// Symmetric: true
}

func ExampleFixed() {
	// With a fixed North, East, South, West ordering the walk is fully
	// predictable.
	g, _, _ := carve.NewMaze(2, 2, carve.Fixed(maze.Directions))
	for _, row := range g.Masks() {
		fmt.Println(row)
	}
	// Output:
	// [N--W NE--]
	// [-ESW --SW]
}
