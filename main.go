package main

import "github.com/alexiusacademia/gopurlin/cmd"

func main() {
	cmd.Execute()
}
