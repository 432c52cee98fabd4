package main

import "github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/cmd/dcsim/cmd"

func main() {
	cmd.Execute()
}
