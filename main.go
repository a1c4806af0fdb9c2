// package main provides the entry point for the purl-component CLI and API server.
package main

import "github.com/ortelius/purl-component/cmd"

func main() {
	cmd.Execute()
}
