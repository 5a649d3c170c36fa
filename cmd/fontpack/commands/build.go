package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fontpack/internal/adapters/vfs"
	"go.trai.ch/fontpack/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [bundles...]",
		Short: "Build the fonts described by the given bundle documents",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			outDir, _ := cmd.Flags().GetString("out")
			options, _ := cmd.Flags().GetString("options")
			compiler, _ := cmd.Flags().GetString("compiler")
			cacheShape, _ := cmd.Flags().GetString("cache-shape")
			jobs, _ := cmd.Flags().GetInt("jobs")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				OutDir:      outDir,
				OptionsFile: options,
				Compiler:    compiler,
				CacheShape:  cacheShape,
				Jobs:        jobs,
				NoCache:     noCache,
			})
		},
	}
	cmd.Flags().StringP("out", "o", app.DefaultOutDir, "Directory the outputs are written to")
	cmd.Flags().String("options", "", "Bundle document applied to every bundle as lower-precedence options")
	cmd.Flags().String("compiler", "", "Font compiler command line (overrides $FONTPACK_COMPILER)")
	cmd.Flags().String("cache-shape", string(vfs.ShapeKeyed), "Virtual filesystem read cache: keyed or legacy")
	cmd.Flags().IntP("jobs", "j", 0, "Number of bundles built in parallel (0 = one per CPU)")
	cmd.Flags().BoolP("no-cache", "n", false, "Rebuild every bundle, ignoring recorded build info")
	return cmd
}
