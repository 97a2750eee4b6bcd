package main

import "interest-calculator/cmd"

func main() {
	cmd.Execute()
}
