package main

import (
	"os"

	"github.com/vanshshar/QuizMaster/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
