package main

import "github.com/pmartens/mxvault/internal/cli"

func main() {
	cli.Execute()
}
