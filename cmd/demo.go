package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"opensilex-client/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Demo data helpers",
}

var demoSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the server with generated demo data",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		numProjects, _ := cmd.Flags().GetInt("projects")
		numVariables, _ := cmd.Flags().GetInt("variables")
		numPoints, _ := cmd.Flags().GetInt("points")
		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		gen := demo.NewGenerator(seed)
		ctx := cmd.Context()

		created := 0
		for _, project := range gen.Projects(numProjects) {
			resp, err := c.CreateProject(ctx, project)
			if err != nil {
				cmd.Printf("Error creating project: %v\n", err)
				return
			}
			if !resp.Success {
				cmd.Printf("Project %q rejected (%d): %s\n", project.Name, resp.StatusCode, failureText(resp))
				continue
			}
			created++

			experiment := gen.Experiment(project.URI)
			if resp, err := c.CreateExperiment(ctx, experiment); err != nil {
				cmd.Printf("Error creating experiment: %v\n", err)
				return
			} else if !resp.Success {
				cmd.Printf("Experiment %q rejected (%d): %s\n", experiment.Name, resp.StatusCode, failureText(resp))
			}
		}
		cmd.Printf("Created %d projects\n", created)

		variables := 0
		points := 0
		for i := 0; i < numVariables; i++ {
			variable := gen.Variable()
			resp, err := c.CreateVariable(ctx, variable)
			if err != nil {
				cmd.Printf("Error creating variable: %v\n", err)
				return
			}
			if !resp.Success {
				cmd.Printf("Variable %q rejected (%d): %s\n", variable.Name, resp.StatusCode, failureText(resp))
				continue
			}
			variables++

			if numPoints > 0 {
				n, err := c.CreateDataBatches(ctx, gen.DataPoints(variable.URI, "", numPoints))
				if err != nil {
					cmd.Printf("Some data batches failed: %v\n", err)
				}
				points += n
			}
		}
		cmd.Printf("Created %d variables and %d data points\n", variables, points)
	},
}

func init() {
	demoSeedCmd.Flags().Int("projects", 3, "Number of demo projects")
	demoSeedCmd.Flags().Int("variables", 5, "Number of demo variables")
	demoSeedCmd.Flags().Int("points", 24, "Data points per variable")
	demoSeedCmd.Flags().Int64("seed", 0, "Random seed (default: current time)")

	demoCmd.AddCommand(demoSeedCmd)
	rootCmd.AddCommand(demoCmd)
}
