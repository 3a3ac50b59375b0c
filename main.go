package main

import "confdiff/cmd"

func main() {
	cmd.Execute()
}
