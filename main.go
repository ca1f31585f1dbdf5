package main

import "github.com/kavyamurthy/paintsight/cmd"

func main() {
	cmd.Execute()
}
