package main

import "github.com/idilsaglam/sharehouse/internal/cli"

func main() {
	cli.Main()
}
