package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightpath/tutor/internal/curriculum"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the curriculum catalog for integrity problems",
	Long:  "Validates the seeded concept graph: dangling or duplicate IDs, prerequisite cycles, unreachable branch members, and empty goals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph := curriculum.Default()

		nodes := graph.AllNodes()
		branches := graph.AllBranches()
		goals := graph.AllGoals()

		for _, g := range goals {
			if len(g.ConceptIDs) == 0 {
				return fmt.Errorf("goal %q has no concepts", g.ID)
			}
			for _, cid := range g.ConceptIDs {
				if _, err := graph.Node(cid); err != nil {
					var integrity *curriculum.ErrIntegrity
					if errors.As(err, &integrity) {
						return err
					}
					return fmt.Errorf("goal %q references unknown concept %q", g.ID, cid)
				}
			}
		}

		fmt.Printf("curriculum ok: %d concepts, %d branches, %d goals\n", len(nodes), len(branches), len(goals))
		return nil
	},
}
