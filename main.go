package main

import "github.com/lumenkraft/hr-management/cmd"

func main() {
	cmd.Execute()
}
