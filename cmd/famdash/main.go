// Package main provides the famdash command-line tool. Running it renders
// the family dashboard PNG for a given date (today by default).
package main

import "github.com/famdash/famdash/cmd/famdash/cmd"

func main() {
	cmd.Execute()
}
