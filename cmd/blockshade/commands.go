package main

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/blockshade/pkg/math3d"
	"github.com/taigrr/blockshade/pkg/models"
	"github.com/taigrr/blockshade/pkg/render"
)

func newRootCmd() *cobra.Command {
	opts := &options{}
	var cfg *config

	root := &cobra.Command{
		Use:   "blockshade",
		Short: "Render shaded convex solids in the terminal",
		Long: "blockshade draws flat-shaded convex solids with half-block characters,\n" +
			"two pixels per cell, in 24-bit color.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			var err error
			cfg, err = opts.resolve()
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.fps, "fps", 14, "frames per second")
	flags.StringVar(&opts.light, "light", "0,-1,-1", "light direction as x,y,z")
	flags.StringVar(&opts.color, "color", "255,255,255", "solid color as r,g,b (spin, view, snapshot)")
	flags.IntVar(&opts.detail, "detail", 0, "icosphere subdivisions or UV sphere resolution (0 picks a default)")
	flags.BoolVar(&opts.flat, "flat", false, "disable lighting")
	flags.BoolVar(&opts.wireframe, "wireframe", false, "outline faces instead of filling them")
	flags.BoolVar(&opts.debug, "debug", false, "log debug output to stderr")

	// cfg is filled in by PersistentPreRunE before any RunE runs.
	conf := func() *config { return cfg }

	root.AddCommand(
		newBounceCmd(conf),
		newSpinCmd(conf),
		newViewCmd(conf),
		newSnapshotCmd(conf),
	)
	return root
}

func newBounceCmd(conf func() *config) *cobra.Command {
	return &cobra.Command{
		Use:   "bounce",
		Short: "Bounce a color cycling icosphere around the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := conf()
			return runInteractive(cmd.Context(), cfg, newBounceScene(cfg))
		},
	}
}

func newSpinCmd(conf func() *config) *cobra.Command {
	return &cobra.Command{
		Use:       "spin [shape]",
		Short:     "Spin a solid (cube, pyramid, icosphere, uvsphere)",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: shapeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := conf()
			name := "pyramid"
			if len(args) > 0 {
				name = args[0]
			}
			draw, err := lookupShape(name, cfg.detail)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg, newSpinScene(cfg, draw))
		},
	}
}

func newViewCmd(conf func() *config) *cobra.Command {
	return &cobra.Command{
		Use:   "view <model.glb|model.gltf>",
		Short: "Spin the convex hull of a glTF model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := conf()
			pc, err := loadModel(cfg, args[0])
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg, newSpinScene(cfg, meshDraw(pc.Points)))
		},
	}
}

func loadModel(cfg *config, path string) (*models.PointCloud, error) {
	loader := &models.Loader{Logger: cfg.logger}
	pc, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	pc.Normalize()
	cfg.logger.Info("loaded model", "name", pc.Name, "points", pc.Len())
	return pc, nil
}

type snapshotOptions struct {
	width, height int
	rotation      string
	model         string
	raw           bool
}

func newSnapshotCmd(conf func() *config) *cobra.Command {
	var so snapshotOptions

	cmd := &cobra.Command{
		Use:       "snapshot [shape]",
		Short:     "Render one frame to stdout",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: shapeNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := conf()
			rot, err := parseVec3(so.rotation)
			if err != nil {
				return fmt.Errorf("rotation: %w", err)
			}

			var draw drawFunc
			switch {
			case so.model != "":
				pc, err := loadModel(cfg, so.model)
				if err != nil {
					return err
				}
				draw = meshDraw(pc.Points)
			default:
				name := "pyramid"
				if len(args) > 0 {
					name = args[0]
				}
				if draw, err = lookupShape(name, cfg.detail); err != nil {
					return err
				}
			}

			var sizer render.Sizer = render.StaticSize{Width: so.width, Height: so.height}
			if so.width <= 0 || so.height <= 0 {
				sizer = uv.DefaultTerminal()
			}
			screen, err := render.NewScreen(sizer, cfg.light)
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}

			cols, rows := screen.Size()
			draw(screen, render.Transform{
				Position: math3d.V3(float64(cols)/2, float64(rows), 0),
				Rotation: rot,
				Scale:    math3d.Splat(float64(rows) / 1.8),
			}, render.Material{
				Color:     cfg.color,
				Flat:      cfg.flat,
				Wireframe: cfg.wireframe,
			})

			if so.raw {
				return screen.Flush(cmd.OutOrStdout())
			}
			buf := uv.NewScreenBuffer(cols, rows)
			screen.Draw(buf, buf.Bounds())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), buf.Render())
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&so.width, "width", 0, "frame width in cells (default: terminal width)")
	f.IntVar(&so.height, "height", 0, "frame height in cells (default: terminal height)")
	f.StringVar(&so.rotation, "rotation", "25,30,0", "rotation in degrees as x,y,z")
	f.StringVar(&so.model, "model", "", "render the hull of a glTF model instead of a shape")
	f.BoolVar(&so.raw, "raw", false, "write the unbroken half-block stream instead of line-broken output")
	return cmd
}
