package cmd

import (
	"github.com/spf13/cobra"

	"opensilex-client/internal/client"
	"opensilex-client/internal/models"
)

var experimentsCmd = &cobra.Command{
	Use:   "experiments",
	Short: "Manage experiments",
}

var experimentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List experiments",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		name, _ := cmd.Flags().GetString("name")
		project, _ := cmd.Flags().GetString("project")
		year, _ := cmd.Flags().GetInt("year")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		resp, err := c.SearchExperiments(cmd.Context(), client.ExperimentSearch{
			Name:     name,
			Project:  project,
			Year:     year,
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Search failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		var experiments []models.Experiment
		if err := resp.Decode(&experiments); err != nil {
			cmd.Printf("Error decoding response: %v\n", err)
			return
		}
		if len(experiments) == 0 {
			cmd.Println("No experiments found")
			return
		}
		for _, e := range experiments {
			cmd.Printf("%s\t%s\n", e.Name, e.URI)
		}
	},
}

var experimentsGetCmd = &cobra.Command{
	Use:   "get [uri]",
	Short: "Show one experiment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		resp, err := c.GetExperiment(cmd.Context(), args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Lookup failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		var experiment models.Experiment
		if err := resp.Decode(&experiment); err != nil {
			cmd.Printf("Error decoding response: %v\n", err)
			return
		}
		cmd.Printf("Name: %s\n", experiment.Name)
		cmd.Printf("URI: %s\n", experiment.URI)
		if experiment.StartDate != "" {
			cmd.Printf("Dates: %s - %s\n", experiment.StartDate, experiment.EndDate)
		}
		if experiment.Objective != "" {
			cmd.Printf("Objective: %s\n", experiment.Objective)
		}
	},
}

func init() {
	experimentsListCmd.Flags().String("name", "", "Filter by name")
	experimentsListCmd.Flags().String("project", "", "Filter by project URI")
	experimentsListCmd.Flags().Int("year", 0, "Filter by year")
	experimentsListCmd.Flags().Int("page", 0, "Page number")
	experimentsListCmd.Flags().Int("page-size", 20, "Page size")

	experimentsCmd.AddCommand(experimentsListCmd)
	experimentsCmd.AddCommand(experimentsGetCmd)
	rootCmd.AddCommand(experimentsCmd)
}
