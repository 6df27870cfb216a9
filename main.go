package main

import (
	_ "go.uber.org/automaxprocs"
	"nightlife-booking/cmd"
)

func main() {
	cmd.Start()
}
