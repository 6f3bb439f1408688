package main

import "taskflow.app/taskflow/cmd"

func main() {
	cmd.Execute()
}
