package main

import (
	"github.com/custodia-labs/docquery/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
