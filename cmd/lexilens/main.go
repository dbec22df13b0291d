package main

import "github.com/lexilens/lexilens/internal/cli"

func main() {
	cli.Execute()
}
