package main

import "github.com/RicGue02/LifeOS/cmd/lifeos/root"

func main() {
	root.Execute()
}
