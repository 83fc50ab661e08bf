package main

import "taxo/cmd"

func main() {
	cmd.Execute()
}
