package main

import "github.com/KanekiDevPro/Trade-Size-Calculator/internal/cli"

func main() {
	cli.Execute()
}
