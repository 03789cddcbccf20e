package main

import "github.com/matthieukhl/schemapilot/internal/cmd"

func main() {
	cmd.Execute()
}
