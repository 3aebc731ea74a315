package main

import "github.com/jhitchenor/hungerford-holdings/cmd/hh/root"

func main() {
	root.Execute()
}
