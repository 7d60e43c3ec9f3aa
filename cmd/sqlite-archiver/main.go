package main

import "github.com/archivist-tools/sqlite-archiver/internal/cli"

func main() {
	cli.Execute()
}
