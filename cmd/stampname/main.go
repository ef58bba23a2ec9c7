package main

import "github.com/mydehq/stampname/internal/cli"

func main() {
	cli.Execute()
}
