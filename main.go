package main

import "github.com/cricsight/cricsight/cmd"

func main() {
	cmd.Execute()
}
