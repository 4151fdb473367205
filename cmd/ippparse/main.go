package main

import (
	"github.com/msto63/ippcode/cmd/ippparse/cmd"
)

func main() {
	cmd.Execute()
}
