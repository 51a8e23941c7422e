package main

import "github.com/pders01/solarterms/cmd"

func main() {
	cmd.Execute()
}
