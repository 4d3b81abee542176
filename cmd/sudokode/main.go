package main

import "svw.info/sudokode/internal/cli"

func main() {
	cli.Execute()
}
