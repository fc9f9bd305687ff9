// Command shelf is a local-first product inventory manager.
package main

import "github.com/shelfd/shelf/internal/cli"

func main() {
	cli.Execute()
}
