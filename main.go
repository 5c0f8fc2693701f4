package main

import "github.com/plateful/foodlog/cmd/foodlog"

func main() {
	foodlog.Execute()
}
