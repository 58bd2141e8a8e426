package main

import (
	"fmt"
	"log"
	"os"

	"scanhub.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

func resolvePassword(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: hash-gen <password>")
	}
	return args[0], nil
}

func generateHash(password string) (string, error) {
	return crypto.HashSecret(password)
}

func main() {
	password, err := resolvePassword(os.Args[1:])
	if err != nil {
		fatalfFn("%v", err)
	}

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
	}

	printfFn("Bcrypt Hash: %s\n", hash)
}
