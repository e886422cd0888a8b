package main

import "github.com/oy3o/textenc/cmd/textenc/cmd"

func main() {
	cmd.Execute()
}
