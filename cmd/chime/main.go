// Package main provides the CLI entrypoint for chime.
package main

func main() {
	Execute()
}
