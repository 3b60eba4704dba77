package main

import "github.com/PavelMelnik94/my-tracker/cmd/tracker"

func main() {
	tracker.Execute()
}
