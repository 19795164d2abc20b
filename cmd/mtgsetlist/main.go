package main

import "github.com/guarzo/mtgsetlist/internal/cli"

func main() {
	cli.Execute()
}
