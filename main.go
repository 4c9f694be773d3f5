package main

import "commitgate/internal/cli"

func main() {
	cli.Execute()
}
