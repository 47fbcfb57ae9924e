package main

import "github.com/scriptdoc/scriptdoc/cmd"

func main() {
	cmd.Execute()
}
