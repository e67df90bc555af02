package main

import "github.com/CraigKelly/gridpost/cmd"

// TODO: read datasets from a file (one observation per line) instead of
//       repeating everything on the command line

func main() {
	cmd.Execute()
}
