package main

import "potx/internal/cli"

func main() {
	cli.Execute()
}
