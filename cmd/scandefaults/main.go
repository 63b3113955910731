package main

import "github.com/MeKo-Tech/scandefaults/cmd/scandefaults/cmd"

func main() {
	cmd.Execute()
}
