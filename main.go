package main

import "github.com/vipcxj/rangeview/cmd"

func main() {
	cmd.Main()
}
