package main

import "github.com/aalvaropc/gradebook/internal/cli"

func main() {
	cli.Execute()
}
