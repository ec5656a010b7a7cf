package main

import "github.com/erslice/erslice-cli/cmd"

func main() {
	cmd.Execute()
}
