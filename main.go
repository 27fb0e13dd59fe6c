package main

import (
	"cpu-simulator/cmd"
)

func main() {
	cmd.Execute()
}
