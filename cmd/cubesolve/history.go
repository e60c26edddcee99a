package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/cube/internal/domain"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded solve attempts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := a.service(requireStore)
			if err != nil {
				return err
			}
			defer closeStore()

			as, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(as) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No attempts recorded."))
				return nil
			}
			for _, at := range as {
				fmt.Fprintln(out, historyLine(at))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of attempts (0 for all)")
	return cmd
}

func historyLine(at domain.Attempt) string {
	when := time.Unix(0, at.CreatedAt).Format(time.DateTime)
	status := titleStyle.Render(string(at.Status))
	detail := at.Solution
	if at.Status != domain.StatusSolved {
		status = errorStyle.Render(string(at.Status))
		detail = fmt.Sprintf("%s at %s: %s", at.ErrorKind, at.Stage, at.Error)
	}
	return fmt.Sprintf("%s  %s  %-8s %s", mutedStyle.Render(when), at.ID, status, detail)
}
