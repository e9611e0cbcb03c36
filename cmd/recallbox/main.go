package main

import "github.com/mseguin/recallbox/internal/cli"

func main() {
	cli.Execute()
}
