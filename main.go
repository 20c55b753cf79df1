package main

import "github.com/beka-birhanu/vinom-maze/cmd"

func main() {
	cmd.Execute()
}
