package main

import (
	"squall/pkg/squall"

	_ "squall/suites/helloworld"
)

func main() {
	squall.Main()
}
