package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/apptrack/apptrack/internal/db/models"
	"github.com/apptrack/apptrack/pkg/viewmodel"
)

// Application flag names
const (
	flagAppID    = "id"
	flagCompany  = "company"
	flagPosition = "position"
	flagStatus   = "status"
	flagDate     = "date"
	flagYes      = "yes"
)

// GetApplicationsCmd returns the applications command group
func GetApplicationsCmd() *cobra.Command {
	return applicationsCmd
}

func init() {
	applicationsCmd.AddCommand(listApplicationsCmd)
	applicationsCmd.AddCommand(addApplicationCmd)
	applicationsCmd.AddCommand(setStatusCmd)
	applicationsCmd.AddCommand(deleteApplicationCmd)
	applicationsCmd.AddCommand(statsCmd)

	// Add flags for add
	addApplicationCmd.Flags().StringP(flagCompany, "c", "", "Company name")
	addApplicationCmd.Flags().StringP(flagPosition, "p", "", "Position or role")
	addApplicationCmd.Flags().String(flagStatus, string(models.StatusApplied), "Initial status (applied|interview|offer|rejected)")
	addApplicationCmd.Flags().StringP(flagDate, "d", "", "Date applied, YYYY-MM-DD (defaults to today)")
	_ = addApplicationCmd.MarkFlagRequired(flagCompany)
	_ = addApplicationCmd.MarkFlagRequired(flagPosition)

	// Add flags for set-status
	setStatusCmd.Flags().UintP(flagAppID, "i", 0, "Application ID")
	setStatusCmd.Flags().String(flagStatus, "", "New status (applied|interview|offer|rejected)")
	_ = setStatusCmd.MarkFlagRequired(flagAppID)
	_ = setStatusCmd.MarkFlagRequired(flagStatus)

	// Add flags for delete
	deleteApplicationCmd.Flags().UintP(flagAppID, "i", 0, "Application ID")
	deleteApplicationCmd.Flags().BoolP(flagYes, "y", false, "Skip the confirmation prompt")
	_ = deleteApplicationCmd.MarkFlagRequired(flagAppID)
}

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Manage job applications",
}

var listApplicationsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all applications, newest applied date first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := newViewModel()
		if err := vm.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}

		printApplications(vm.Applications())
		return nil
	},
}

var addApplicationCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new application",
	RunE: func(cmd *cobra.Command, _ []string) error {
		company, err := cmd.Flags().GetString(flagCompany)
		if err != nil {
			return err
		}
		position, err := cmd.Flags().GetString(flagPosition)
		if err != nil {
			return err
		}
		status, err := cmd.Flags().GetString(flagStatus)
		if err != nil {
			return err
		}
		date, err := cmd.Flags().GetString(flagDate)
		if err != nil {
			return err
		}
		if date == "" {
			date = time.Now().Format(models.DateAppliedLayout)
		}

		vm := newViewModel()
		if err := vm.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}

		vm.SetForm(viewmodel.Form{
			Company:     company,
			Position:    position,
			Status:      models.Status(status),
			DateApplied: date,
		})
		if err := vm.Add(cmd.Context()); err != nil {
			return fmt.Errorf("failed to add application: %w", err)
		}

		added := vm.Applications()
		fmt.Printf("Added application %d: %s / %s\n", added[0].ID, added[0].Company, added[0].Position)
		return nil
	},
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Change the status of an application",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := cmd.Flags().GetUint(flagAppID)
		if err != nil {
			return err
		}
		statusStr, err := cmd.Flags().GetString(flagStatus)
		if err != nil {
			return err
		}
		status, err := models.ParseStatus(statusStr)
		if err != nil {
			return err
		}

		vm := newViewModel()
		if err := vm.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}

		if err := vm.SetStatus(cmd.Context(), id, status); err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		fmt.Printf("Application %d is now %q\n", id, status)
		return nil
	},
}

var deleteApplicationCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an application",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := cmd.Flags().GetUint(flagAppID)
		if err != nil {
			return err
		}
		yes, err := cmd.Flags().GetBool(flagYes)
		if err != nil {
			return err
		}

		if !yes && !confirm(fmt.Sprintf("Delete application %d?", id)) {
			fmt.Println("Aborted")
			return nil
		}

		vm := newViewModel()
		if err := vm.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}

		if err := vm.Remove(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete application: %w", err)
		}

		fmt.Printf("Deleted application %d\n", id)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number of applications per status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		vm := newViewModel()
		if err := vm.Load(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}

		counts := vm.StatusCounts()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, status := range models.Statuses {
			fmt.Fprintf(w, "%s\t%d\n", status, counts[status])
		}
		fmt.Fprintf(w, "total\t%d\n", vm.Len())
		return w.Flush()
	},
}

func printApplications(apps []models.Application) {
	if len(apps) == 0 {
		fmt.Println("No applications recorded")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tSTATUS\tDATE APPLIED")
	for _, app := range apps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", app.ID, app.Company, app.Position, app.Status, app.DateApplied)
	}
	_ = w.Flush()
}

// confirm asks the user to confirm an action on stdin
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
