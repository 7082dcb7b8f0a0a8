package main

import "transcript/cmd"

func main() {
	cmd.Execute()
}
