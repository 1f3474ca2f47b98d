package cmd

import (
	"github.com/spf13/cobra"

	"opensilex-client/internal/client"
	"opensilex-client/internal/models"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		name, _ := cmd.Flags().GetString("name")
		year, _ := cmd.Flags().GetInt("year")
		keyword, _ := cmd.Flags().GetString("keyword")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		resp, err := c.SearchProjects(cmd.Context(), client.ProjectSearch{
			Name:     name,
			Year:     year,
			Keyword:  keyword,
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

		var projects []models.Project
		if err := resp.Decode(&projects); err != nil {
			cmd.Printf("Error decoding response: %v\n", err)
			return
		}
		if len(projects) == 0 {
			cmd.Println("No projects found")
			return
		}
		for _, p := range projects {
			cmd.Printf("%s\t%s\n", p.Name, p.URI)
		}
	},
}

var projectsGetCmd = &cobra.Command{
	Use:   "get [uri]",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		resp, err := c.GetProject(cmd.Context(), args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Lookup failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		var project models.Project
		if err := resp.Decode(&project); err != nil {
			cmd.Printf("Error decoding response: %v\n", err)
			return
		}
		cmd.Printf("Name: %s\n", project.Name)
		cmd.Printf("URI: %s\n", project.URI)
		if project.Description != "" {
			cmd.Printf("Description: %s\n", project.Description)
		}
		if project.StartDate != "" {
			cmd.Printf("Dates: %s - %s\n", project.StartDate, project.EndDate)
		}
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		name, _ := cmd.Flags().GetString("name")
		shortname, _ := cmd.Flags().GetString("shortname")
		description, _ := cmd.Flags().GetString("description")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")

		resp, err := c.CreateProject(cmd.Context(), models.ProjectCreation{
			Name:        name,
			Shortname:   shortname,
			Description: description,
			StartDate:   start,
			EndDate:     end,
		})
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Create failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}
		cmd.Printf("Project created: %v\n", resp.Data)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete [uri]",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		resp, err := c.DeleteProject(cmd.Context(), args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Delete failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}
		cmd.Println("Project deleted")
	},
}

func init() {
	projectsListCmd.Flags().String("name", "", "Filter by name")
	projectsListCmd.Flags().Int("year", 0, "Filter by year")
	projectsListCmd.Flags().String("keyword", "", "Filter by keyword")
	projectsListCmd.Flags().Int("page", 0, "Page number")
	projectsListCmd.Flags().Int("page-size", 20, "Page size")

	projectsCreateCmd.Flags().String("name", "", "Project name (required)")
	projectsCreateCmd.Flags().String("shortname", "", "Short name")
	projectsCreateCmd.Flags().String("description", "", "Description")
	projectsCreateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectsCreateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsGetCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}
