package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	pwerr "github.com/KirkDiggler/paranoidworld/internal/errors"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	root := newRootCmd(newApp)
	if err := root.Execute(); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and returns the exit code. Bad input and bad formulas are
// the player's to fix, so they print as warnings with their message.
func report(err error) int {
	if pwerr.IsUserInput(err) || pwerr.IsInvalidFormula(err) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return 2
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return 1
}
