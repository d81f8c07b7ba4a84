// algovista computes and replays graph traversals in the terminal.
//
// Usage:
//
//	algovista generate --nodes 7 --edges 8 --weighted
//	algovista trace --algorithm dijkstra --start 2 --weighted
//	algovista trace --all --shape cycle
//	algovista play --algorithm dfs          # interactive player
//	algovista play --plain --speed 4        # timer-driven frames
//	algovista build --nodes 4 0-1 1-2:5 2-3 # custom graph
//	algovista config show
//
// Configuration is read from $XDG_CONFIG_HOME/algovista/config.yaml.
package main

import (
	"os"

	"github.com/algovista/algovista/cmd/algovista/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
