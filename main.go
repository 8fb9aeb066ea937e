package main

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depstatus/cmd"
)

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if err := cmd.Execute(); err != nil {
		logger.Fatalf("Error executing 'depstatus': %s", err)
	}
}
