package main

import "github.com/doctools/docsmith/cmd"

func main() {
	cmd.Execute()
}
