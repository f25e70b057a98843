package main

import "odgen/cmd"

func main() {
	cmd.Execute()
}
