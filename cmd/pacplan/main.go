package main

import "pacplan/internal/cli"

func main() {
	cli.Execute()
}
