package cmd

import (
	"github.com/spf13/cobra"

	"opensilex-client/internal/client"
	"opensilex-client/internal/models"
)

var objectsCmd = &cobra.Command{
	Use:   "objects",
	Short: "Manage scientific objects (plots, plants, ...)",
}

var objectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scientific objects",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		name, _ := cmd.Flags().GetString("name")
		experiment, _ := cmd.Flags().GetString("experiment")
		rdfType, _ := cmd.Flags().GetString("type")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		search := client.ScientificObjectSearch{
			Name:       name,
			Experiment: experiment,
			Page:       page,
			PageSize:   pageSize,
		}
		if rdfType != "" {
			search.RDFTypes = []string{rdfType}
		}

		resp, err := c.SearchScientificObjects(cmd.Context(), search)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Search failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		var objects []models.ScientificObject
		if err := resp.Decode(&objects); err != nil {
			cmd.Printf("Error decoding response: %v\n", err)
			return
		}
		if len(objects) == 0 {
			cmd.Println("No scientific objects found")
			return
		}
		for _, o := range objects {
			cmd.Printf("%s\t%s\t%s\n", o.Name, o.RDFType, o.URI)
		}
	},
}

func init() {
	objectsListCmd.Flags().String("name", "", "Filter by name")
	objectsListCmd.Flags().String("experiment", "", "Filter by experiment URI")
	objectsListCmd.Flags().String("type", "", "Filter by RDF type")
	objectsListCmd.Flags().Int("page", 0, "Page number")
	objectsListCmd.Flags().Int("page-size", 20, "Page size")

	objectsCmd.AddCommand(objectsListCmd)
	rootCmd.AddCommand(objectsCmd)
}
