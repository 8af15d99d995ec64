package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/spec-kit/request-tracker/internal/analytics"
	"github.com/spec-kit/request-tracker/internal/domain"
	"github.com/spec-kit/request-tracker/internal/history"
	"github.com/spec-kit/request-tracker/internal/record"
	"github.com/spec-kit/request-tracker/internal/workflow"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "reqctl",
		Short:        "Inspect request snapshots and productivity payloads offline",
		Long:         `Runs the lifecycle guard, timeline reconstruction and productivity views over JSON (or JSONC) files. Use "-" to read stdin.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newTimelineCmd(),
		newCheckCmd(),
		newActionsCmd(),
		newProductivityCmd(),
		newPeriodQueryCmd(),
	)
	return root
}

func newTimelineCmd() *cobra.Command {
	var collapse bool
	cmd := &cobra.Command{
		Use:   "timeline <file>",
		Short: "Rebuild the status timeline of a request snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(cmd, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, history.ReconstructWithOptions(rec, history.Options{CollapseDuplicates: collapse}))
		},
	}
	cmd.Flags().BoolVar(&collapse, "collapse", false, "drop entries repeating the same instant and label")
	return cmd
}

type actorFlags struct {
	id   string
	role string
}

func (a *actorFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.id, "actor", "", "acting user id")
	cmd.Flags().StringVar(&a.role, "role", string(domain.RoleEmployee), "acting user role (employee, support, admin)")
}

func (a *actorFlags) actor() (domain.Actor, error) {
	role := domain.Role(a.role)
	if !role.Valid() {
		return domain.Actor{}, fmt.Errorf("unknown role %q", a.role)
	}
	return domain.Actor{ID: a.id, Role: role}, nil
}

func newCheckCmd() *cobra.Command {
	var (
		actor    actorFlags
		to       string
		reason   string
		evidence string
	)
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Decide whether an actor may move a request to another status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(cmd, args[0])
			if err != nil {
				return err
			}
			who, err := actor.actor()
			if err != nil {
				return err
			}
			req := domain.RequestFromRecord(rec)
			decision := workflow.CanTransition(req, who, domain.RequestStatus(to), workflow.Payload{
				Reason:      reason,
				EvidenceURL: evidence,
			})
			return writeJSON(cmd, decision)
		},
	}
	actor.bind(cmd)
	cmd.Flags().StringVar(&to, "to", "", "target status, e.g. \"En progreso\"")
	cmd.Flags().StringVar(&reason, "reason", "", "rejection reason")
	cmd.Flags().StringVar(&evidence, "evidence", "", "review evidence URL")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newActionsCmd() *cobra.Command {
	var actor actorFlags
	cmd := &cobra.Command{
		Use:   "actions <file>",
		Short: "List the actions an actor may be offered on a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readRecord(cmd, args[0])
			if err != nil {
				return err
			}
			who, err := actor.actor()
			if err != nil {
				return err
			}
			actions := workflow.AvailableActions(domain.RequestFromRecord(rec), who)
			if actions == nil {
				actions = []domain.Action{}
			}
			return writeJSON(cmd, actions)
		},
	}
	actor.bind(cmd)
	return cmd
}

func newProductivityCmd() *cobra.Command {
	var period, technician, department string
	cmd := &cobra.Command{
		Use:   "productivity <file>",
		Short: "Normalize, filter, total and rank a productivity payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			payload, err := record.DecodePayload(data)
			if err != nil {
				return err
			}
			sel := analytics.Selection{Technician: technician, Department: department}
			return writeJSON(cmd, analytics.BuildView(payload, sel, analytics.ParsePeriod(period)))
		},
	}
	cmd.Flags().StringVar(&period, "period", string(analytics.PeriodAll), "all, day, week or month")
	cmd.Flags().StringVar(&technician, "technician", analytics.All, "technician user id")
	cmd.Flags().StringVar(&department, "department", analytics.All, "department name")
	return cmd
}

func newPeriodQueryCmd() *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "period-query",
		Short: "Print the backend query string for an analytics period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := analytics.PeriodQuery(analytics.ParsePeriod(period), time.Now())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), q.Encode())
			return err
		},
	}
	cmd.Flags().StringVar(&period, "period", string(analytics.PeriodAll), "all, day, week or month")
	return cmd
}

// readInput loads path (or stdin for "-") and strips JSONC comments and
// trailing commas.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return jsonc.ToJSON(data), nil
}

func readRecord(cmd *cobra.Command, path string) (record.Record, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	rec, err := record.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
