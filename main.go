package main

import "roll-checker/cmd"

func main() {
	cmd.Execute()
}
