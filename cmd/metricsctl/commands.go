package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studentportal/internal/config"
	"studentportal/internal/metrics"
	"studentportal/internal/portal"
)

type app struct {
	configPath string
	now        string
	svc        *portal.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "metricsctl",
		Short:         "Compute portal metrics from JSON snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.now, "now", "", "evaluate progress at this date (YYYY-MM-DD) instead of today")

	root.AddCommand(
		a.snapshotCmd("course", "Summarise a taught course snapshot", func(raw []byte) (any, error) {
			var in portal.CourseInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, fmt.Errorf("decode course: %w", err)
			}
			return a.svc.CourseSummary(in), nil
		}),
		a.snapshotCmd("dashboard", "Summarise a student dashboard snapshot", func(raw []byte) (any, error) {
			var in portal.DashboardInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, fmt.Errorf("decode dashboard: %w", err)
			}
			return a.svc.Dashboard(in), nil
		}),
		a.progressCmd(),
		a.labelCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	clock := metrics.Clock(time.Now)
	if a.now != "" {
		t, err := metrics.ParseDate(a.now)
		if err != nil {
			return err
		}
		clock = func() time.Time { return t }
	}
	a.svc = portal.NewService(portal.Options{
		Locale:     metrics.Locale(cfg.Locale),
		Thresholds: cfg.Attendance.Thresholds(),
		Clock:      clock,
	}, zap.NewNop(), prometheus.NewRegistry())
	return nil
}

func (a *app) snapshotCmd(use, short string, run func([]byte) (any, error)) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			out, err := run(raw)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "snapshot file, - for stdin")
	return cmd
}

func (a *app) progressCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Percentage of a date interval already elapsed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.svc.Progress(metrics.DateInterval{StartDate: start, EndDate: end})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"start": start, "end": end, "percent": p})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "interval start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "interval end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func (a *app) labelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label <domain> <code>",
		Short: "Display label and color of a status code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), a.svc.Label(metrics.Domain(args[0]), args[1]))
		},
	}
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return raw, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
