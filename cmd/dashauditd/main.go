package main

import (
	"log"

	"github.com/NVIDIA/dashboard-audit/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
