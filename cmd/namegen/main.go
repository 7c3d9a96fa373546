package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"petnames/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "namegen:", err)
		os.Exit(1)
	}
}
