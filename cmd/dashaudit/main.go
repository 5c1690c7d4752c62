package main

import (
	"github.com/NVIDIA/dashboard-audit/pkg/cli"
)

func main() {
	cli.Execute()
}
