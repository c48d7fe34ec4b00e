package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"robot-npa-dashboard/config"
	"robot-npa-dashboard/internal/domain"
	"robot-npa-dashboard/internal/repository/static"
	"robot-npa-dashboard/internal/service/formatter"
	"robot-npa-dashboard/internal/service/report"
)

func newReportCmd() *cobra.Command {
	var reportType, start, end string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Вывести текстовую сводку отчета",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogger(cfg)

			rt, err := domain.ParseReportType(reportType)
			if err != nil {
				return err
			}

			reports := report.NewService(static.NewSource(nil), nil, cfg.DefaultPeriodDays)
			rng, err := reports.ResolveRange(start, end)
			if err != nil {
				return err
			}

			result, err := reports.Build(cmd.Context(), report.Request{Type: rt, Range: rng})
			if err != nil {
				return err
			}

			summaries, err := formatter.NewSummaryFormatter()
			if err != nil {
				return err
			}

			var text string
			if result.Type == domain.ReportNpa {
				text, err = summaries.FormatNpa(result.Npa)
			} else {
				text, err = summaries.FormatRobot(result.Robot)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&reportType, "type", string(domain.ReportRobot), "тип отчета: robot или npa")
	cmd.Flags().StringVar(&start, "start", "", "начало периода (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "конец периода (YYYY-MM-DD)")

	return cmd
}
