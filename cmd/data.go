package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"opensilex-client/internal/client"
	"opensilex-client/internal/models"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Work with measurement data",
}

func dataSearchFromFlags(cmd *cobra.Command) client.DataSearch {
	experiment, _ := cmd.Flags().GetString("experiment")
	variable, _ := cmd.Flags().GetString("variable")
	target, _ := cmd.Flags().GetString("target")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	return client.DataSearch{
		Experiment: experiment,
		Variable:   variable,
		Target:     target,
		StartDate:  start,
		EndDate:    end,
		Page:       page,
		PageSize:   pageSize,
	}
}

var dataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List data points",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		resp, err := c.SearchData(cmd.Context(), dataSearchFromFlags(cmd))
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Search failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}

		var points []models.DataPoint
		if err := resp.Decode(&points); err != nil {
			cmd.Printf("Error decoding response: %v\n", err)
			return
		}
		if len(points) == 0 {
			cmd.Println("No data found")
			return
		}
		for _, p := range points {
			cmd.Printf("%s\t%s\t%v\n", p.Date, p.Variable, p.Value)
		}
	},
}

var dataAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single data point",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		variable, _ := cmd.Flags().GetString("variable")
		target, _ := cmd.Flags().GetString("target")
		value, _ := cmd.Flags().GetFloat64("value")
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = time.Now().UTC().Format(time.RFC3339)
		}

		resp, err := c.CreateData(cmd.Context(), []models.DataPoint{{
			Date:     date,
			Target:   target,
			Variable: variable,
			Value:    value,
		}})
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if !resp.Success {
			cmd.Printf("Create failed (%d): %s\n", resp.StatusCode, failureText(resp))
			return
		}
		cmd.Println("Data point created")
	},
}

// readDataPointsCSV parses CSV rows into data points. The header row
// names the columns (case-insensitive); date, variable and value are
// required, target is optional. Numeric values become float64, all
// others stay strings.
func readDataPointsCSV(r io.Reader) ([]models.DataPoint, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "variable", "value"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV header has no %s column", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var points []models.DataPoint
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}
		raw := field(record, "value")
		if raw == "" {
			return nil, fmt.Errorf("CSV line %d has no value", line)
		}
		point := models.DataPoint{
			Date:     field(record, "date"),
			Variable: field(record, "variable"),
			Target:   field(record, "target"),
		}
		if number, err := strconv.ParseFloat(raw, 64); err == nil {
			point.Value = number
		} else {
			point.Value = raw
		}
		points = append(points, point)
	}
	return points, nil
}

var dataImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import data points from a CSV file",
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			cmd.Println("Error: --file is required")
			return
		}

		f, err := os.Open(file)
		if err != nil {
			cmd.Printf("Error opening %s: %v\n", file, err)
			return
		}
		defer f.Close()

		points, err := readDataPointsCSV(f)
		if err != nil {
			cmd.Printf("Error reading CSV: %v\n", err)
			return
		}
		if len(points) == 0 {
			cmd.Println("No data points in file")
			return
		}

		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		created, err := c.CreateDataBatches(cmd.Context(), points)
		if err != nil {
			cmd.Printf("Some data batches failed: %v\n", err)
		}
		cmd.Printf("Imported %d of %d data points\n", created, len(points))
	},
}

var dataExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export matching data to a CSV file",
	Run: func(cmd *cobra.Command, args []string) {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			cmd.Println("Error: --out is required")
			return
		}

		c, err := newAuthedClient(cmd)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer c.Logout()

		items, err := c.SearchAllData(cmd.Context(), dataSearchFromFlags(cmd))
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if len(items) == 0 {
			cmd.Println("No data found")
			return
		}

		f, err := os.Create(out)
		if err != nil {
			cmd.Printf("Error creating %s: %v\n", out, err)
			return
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write([]string{"date", "variable", "target", "value"}); err != nil {
			cmd.Printf("Error writing CSV: %v\n", err)
			return
		}
		for _, item := range items {
			row, ok := item.(map[string]any)
			if !ok {
				continue
			}
			record := []string{
				fmt.Sprint(row["date"]),
				fmt.Sprint(row["variable"]),
				fmt.Sprint(row["target"]),
				fmt.Sprint(row["value"]),
			}
			if err := w.Write(record); err != nil {
				cmd.Printf("Error writing CSV: %v\n", err)
				return
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			cmd.Printf("Error writing CSV: %v\n", err)
			return
		}

		cmd.Printf("Exported %d data points to %s\n", len(items), out)
	},
}

func addDataSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("experiment", "", "Filter by experiment URI")
	cmd.Flags().String("variable", "", "Filter by variable URI")
	cmd.Flags().String("target", "", "Filter by target URI")
	cmd.Flags().String("start", "", "Start date (RFC 3339)")
	cmd.Flags().String("end", "", "End date (RFC 3339)")
	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("page-size", 20, "Page size")
}

func init() {
	addDataSearchFlags(dataListCmd)
	addDataSearchFlags(dataExportCmd)
	dataExportCmd.Flags().String("out", "", "Output CSV file (required)")
	dataImportCmd.Flags().String("file", "", "Input CSV file (required)")

	dataAddCmd.Flags().String("variable", "", "Variable URI (required)")
	dataAddCmd.Flags().String("target", "", "Target scientific object URI")
	dataAddCmd.Flags().Float64("value", 0, "Measured value")
	dataAddCmd.Flags().String("date", "", "Measurement date (RFC 3339, default now)")

	dataCmd.AddCommand(dataListCmd)
	dataCmd.AddCommand(dataAddCmd)
	dataCmd.AddCommand(dataImportCmd)
	dataCmd.AddCommand(dataExportCmd)
	rootCmd.AddCommand(dataCmd)
}
