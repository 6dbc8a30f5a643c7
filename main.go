package main

import (
	"os"

	"github.com/dan13ram/mint-queue/cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
