package cli

import (
	"lifegrid/pkg/sims/life"

	"github.com/spf13/cobra"
)

func newDumpCommand(root *rootOptions) *cobra.Command {
	var (
		world worldFlags
		steps int
		chunk string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print one 32x32 chunk of an unbounded world",
		Long: `dump evolves the configured world for --steps generations and prints the
chunk at --chunk as '#' (alive) and ' ' (dead) inside a frame. Torus worlds
have no chunks and are rejected.`,
		Example: `  lifectl dump --pattern glider --offset 30,30 --steps 8 --chunk 1,1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := world.apply(cmd, &cfg); err != nil {
				return err
			}
			key, err := parseInts(chunk, 2)
			if err != nil {
				return err
			}
			w, err := buildWorld(cfg)
			if err != nil {
				return err
			}
			for i := 0; i < steps; i++ {
				w.Step()
			}
			return w.DumpChunk(cmd.OutOrStdout(), life.ChunkKey{X: key[0], Y: key[1]})
		},
	}
	world.bind(cmd)
	cmd.Flags().IntVar(&steps, "steps", 0, "generations to compute before dumping")
	cmd.Flags().StringVar(&chunk, "chunk", "0,0", "chunk key as x,y")
	return cmd
}
