package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/imageio"
	"svw.info/cube/internal/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out    string
		size   int
		jitter int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "render <state>",
		Short: "Write one synthetic PNG per face for a color state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := domain.ParseCubeState(args[0])
			if err != nil {
				return report(cmd, err)
			}
			r := render.New(size)
			r.Jitter = jitter
			r.Seed = seed
			imgs, err := r.Render(cmd.Context(), st)
			if err != nil {
				return err
			}
			for _, f := range domain.StateOrder {
				path, err := imageio.WritePNG(out, strings.ToLower(f.String()), imgs[f])
				if err != nil {
					return err
				}
				a.logger.Debug("rendered face", zap.String("face", f.String()), zap.String("path", path))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "Output directory")
	cmd.Flags().IntVar(&size, "size", 300, "Image edge length in pixels")
	cmd.Flags().IntVar(&jitter, "jitter", 0, "Maximum per-channel color noise")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Noise seed")
	return cmd
}
