package main

import (
	"rune-savior/cli"
)

func main() {
	cli.Start()
}
