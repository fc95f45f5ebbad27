// Package main provides an example of computing daily prayer times.
package main

import (
	"fmt"
	"time"

	"github.com/zamoosh/religious-times/praytimes"
)

func main() {
	calc := praytimes.New("MWL")
	calc.SetMethod("Tehran")

	// Qom, Iran at UTC+3:30
	qom := praytimes.Coordinates{
		Latitude:  34.641159,
		Longitude: 50.877456,
	}

	times := calc.GetTimes(time.Now(), qom, 3.5, false)

	fmt.Println("Prayer times for Qom, Iran")
	for _, name := range praytimes.TimeNames() {
		fmt.Printf("%-9s %s\n", name.Label(), times[name])
	}
}
