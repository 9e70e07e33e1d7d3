package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/workpulse/attendance-dashboard-go/internal/config"
	"github.com/workpulse/attendance-dashboard-go/internal/export"
	"github.com/workpulse/attendance-dashboard-go/internal/sheets"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "attendctl",
		Short:         "Administrative CLI for the attendance dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(employeesCmd(), exportCmd(), yearlyResetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() (*sheets.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return sheets.NewClient(cfg.Sheets.BaseURL, cfg.Sheets.APIToken), nil
}

func employeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List the employee directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			employees, err := client.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDEPARTMENT\tROLE")
			for _, e := range employees {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Department, e.Role)
			}
			return w.Flush()
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		employeeID string
		year       int
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an employee's attendance for a year as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if year == 0 {
				year = time.Now().Year()
			}
			from := fmt.Sprintf("%d-01-01", year)
			to := fmt.Sprintf("%d-12-31", year)

			records, err := client.GetAttendance(cmd.Context(), employeeID, from, to)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = export.Filename(employeeID, time.Now().UnixMilli())
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()

			if err := export.WriteCSV(f, records); err != nil {
				return err
			}
			fmt.Printf("Exported %d records to %s\n", len(records), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee ID to export (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Year to export (default current year)")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file path (default attendance_<id>_<ts>.csv)")
	cmd.MarkFlagRequired("employee")

	return cmd
}

func yearlyResetCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "yearly-reset",
		Short: "Provision leave quotas for a new year",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if year == 0 {
				year = time.Now().Year() + 1
			}
			if err := client.PerformYearlyReset(cmd.Context(), year); err != nil {
				return err
			}
			fmt.Printf("Yearly reset completed for %d\n", year)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to provision (default next year)")
	return cmd
}
