package main

import "github.com/benoitkugler/svgmorph/cmd/svgmorph/cmd"

func main() {
	cmd.Execute()
}
