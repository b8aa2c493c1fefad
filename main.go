package main

import "github.com/jsphweid/musictheory/cmd"

func main() {
	cmd.Execute()
}
