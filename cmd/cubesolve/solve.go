package main

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/imageio"
	"svw.info/cube/internal/usecase"
)

func newSolveCmd(a *app) *cobra.Command {
	paths := make(map[domain.Face]*string, 6)
	cmd := &cobra.Command{
		Use:   "solve [face=photo ...]",
		Short: "Solve a cube from one photo per face",
		Example: `  cubesolve solve --up u.jpg --right r.jpg --front f.jpg \
    --down d.jpg --left l.jpg --back b.jpg
  cubesolve solve U=u.jpg R=r.jpg F=f.jpg D=d.jpg L=l.jpg B=b.jpg`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			given, err := facePaths(paths, args)
			if err != nil {
				return err
			}
			faces := make(map[domain.Face]image.Image, 6)
			for _, f := range domain.StateOrder {
				p, ok := given[f]
				if !ok {
					continue
				}
				img, err := imageio.DecodeFile(f, p)
				if err != nil {
					return report(cmd, err)
				}
				faces[f] = img
			}
			svc, closeStore, err := a.service(bestEffort)
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := svc.Solve(cmd.Context(), faces)
			if err != nil {
				return report(cmd, err)
			}
			printResult(cmd, res)
			return nil
		},
	}
	for _, f := range domain.StateOrder {
		name := strings.ToLower(f.String())
		paths[f] = cmd.Flags().String(name, "", fmt.Sprintf("Photo of the %s face", name))
	}
	return cmd
}

// facePaths merges the per-face flags with face=photo arguments. The face
// may be a name or a letter; naming a face twice is an error.
func facePaths(flags map[domain.Face]*string, args []string) (map[domain.Face]string, error) {
	out := make(map[domain.Face]string, 6)
	for f, p := range flags {
		if v := strings.TrimSpace(*p); v != "" {
			out[f] = v
		}
	}
	for _, arg := range args {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("argument %q is not face=photo", arg)
		}
		f, err := domain.ParseFace(name)
		if err != nil {
			return nil, err
		}
		if _, dup := out[f]; dup {
			return nil, fmt.Errorf("%s face given more than once", f)
		}
		out[f] = strings.TrimSpace(path)
	}
	return out, nil
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <state>",
		Short: "Check a 54 character color state (W Y R O G B, faces in URFDLB order)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := domain.ParseCubeState(args[0])
			if err != nil {
				return report(cmd, err)
			}
			svc, closeStore, err := a.service(noStore)
			if err != nil {
				return err
			}
			defer closeStore()

			rep, err := svc.Validate(cmd.Context(), st)
			if err != nil {
				return report(cmd, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, stateView(st))
			fmt.Fprintln(out, countsView(rep))
			fmt.Fprintln(out, titleStyle.Render("State is valid."))
			return nil
		},
	}
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <moves...>",
		Short: "Describe a move sequence in plain language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := a.service(noStore)
			if err != nil {
				return err
			}
			defer closeStore()
			fmt.Fprintln(cmd.OutOrStdout(), stepsView(svc.Explain(strings.Join(args, " "))))
			return nil
		},
	}
}

func printResult(cmd *cobra.Command, res *usecase.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, stateView(res.State))
	fmt.Fprintln(out, countsView(res.Report))
	fmt.Fprintln(out)
	fmt.Fprintln(out, boxStyle.Render(titleStyle.Render("Solution")+"  "+res.Solution.Raw))
	fmt.Fprintln(out, stepsView(res.Steps))
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d moves, engine %s, attempt %s",
		len(res.Solution.Moves), res.Stats.Duration.Round(time.Millisecond), res.AttemptID)))
}

// report prints the structured part of a pipeline error and passes it on
// so the process exits non-zero.
func report(cmd *cobra.Command, err error) error {
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, errorStyle.Render(domain.KindOf(err)))
	var (
		ne *domain.IncompleteError
		me *domain.MalformedError
		re *domain.RejectedError
	)
	switch {
	case errors.As(err, &ne):
		for _, f := range ne.Missing {
			fmt.Fprintf(out, "  missing %s (--%s)\n", f, strings.ToLower(f.String()))
		}
	case errors.As(err, &me):
		for _, c := range me.Counts {
			fmt.Fprintf(out, "  %-6s %2d (%+d)\n", c.Color, c.Count, c.Delta())
		}
		for _, d := range me.Duplicates {
			fmt.Fprintf(out, "  center %s repeated on %v\n", d.Color, d.Faces)
		}
	case errors.As(err, &re):
		fmt.Fprintf(out, "  engine: %s\n", re.Diagnostic)
	}
	return err
}
