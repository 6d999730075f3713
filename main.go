package main

import "github.com/inovacc/citynews/cmd"

func main() {
	cmd.Execute()
}
