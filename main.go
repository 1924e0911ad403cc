package main

import "github.com/gridlegend/gridlegend/cmd/gridlegend"

func main() { gridlegend.Execute() }
