package cmd

import (
	"github.com/spf13/cobra"

	"opensilex-client/internal/client"
	"opensilex-client/internal/models"
)

var variablesCmd = &cobra.Command{
	Use:   "variables",
	Short: "Manage measurement variables",
}

var variablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List variables",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		name, _ := cmd.Flags().GetString("name")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		resp, err := c.SearchVariables(cmd.Context(), client.VariableSearch{
			Name:     name,
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

		var variables []models.Variable
		if err := resp.Decode(&variables); err != nil {
			cmd.Printf("Error decoding response: %v\n", err)
			return
		}
		if len(variables) == 0 {
			cmd.Println("No variables found")
			return
		}
		for _, v := range variables {
			cmd.Printf("%s\t%s\n", v.Name, v.URI)
		}
	},
}

var variablesDatatypesCmd = &cobra.Command{
	Use:   "datatypes",
	Short: "List the data types available for variables",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		resp, err := c.VariableDatatypes(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Request failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		items, ok := resp.Data.([]any)
		if !ok {
			cmd.Printf("%v\n", resp.Data)
			return
		}
		for _, item := range items {
			cmd.Printf("%v\n", item)
		}
	},
}

func init() {
	variablesListCmd.Flags().String("name", "", "Filter by name")
	variablesListCmd.Flags().Int("page", 0, "Page number")
	variablesListCmd.Flags().Int("page-size", 20, "Page size")

	variablesCmd.AddCommand(variablesListCmd)
	variablesCmd.AddCommand(variablesDatatypesCmd)
	rootCmd.AddCommand(variablesCmd)
}
