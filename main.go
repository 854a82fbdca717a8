package main

import "github.com/Mohsinsiddi/txgen/cmd"

func main() {
	cmd.Execute()
}
