package main

import "github.com/ESloman/cslo/cmd/slotest/internal"

func main() {
	internal.Execute()
}
