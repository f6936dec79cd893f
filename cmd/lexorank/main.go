package main

import "github.com/calebcase/lexorank/internal/cli"

func main() {
	cli.Execute()
}
