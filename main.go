package main

import "github.com/iksnae/data-donation/cmd"

func main() {
	cmd.Execute()
}
