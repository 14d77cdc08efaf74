// Command hash-generator prints a bcrypt hash for a password, for use
// when provisioning API user accounts directly in the database.
//
// Usage:
//
//	hash-generator <password>
package main

import (
	"fmt"
	"os"

	"github.com/osconstruct/construct-api/internal/service/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <password>")
		os.Exit(2)
	}

	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
