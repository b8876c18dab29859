package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vmilosevic/liftinsights/pkg"
)

// generates the bcrypt hash expected in LIFT_ADMIN_PASSWORD_HASH
func main() {
	fmt.Print("password: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fmt.Fprintln(os.Stderr, "no password given")
		os.Exit(1)
	}

	password := scanner.Text()
	if password == "" {
		fmt.Fprintln(os.Stderr, "no password given")
		os.Exit(1)
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
