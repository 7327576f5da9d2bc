package main

import "github.com/inovacc/wspace/cmd"

func main() {
	cmd.Execute()
}
