package main

import "github.com/mnit-rtmc/trafdat/cmd"

func main() {
	cmd.Execute()
}
