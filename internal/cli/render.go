package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/youruser/horoscopecard/internal/horoscope"
	imagepkg "github.com/youruser/horoscopecard/internal/image"
	"github.com/youruser/horoscopecard/internal/util"
)

var (
	renderOut   string
	renderCount int
)

var renderCmd = &cobra.Command{
	Use:   "render <sign>",
	Short: "Render cards for a sign to PNG files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderCount < 1 {
			return fmt.Errorf("--count must be at least 1")
		}
		a, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		sign, ok := horoscope.LookupSign(args[0])
		if !ok || !a.cfg.Enabled(sign.Slug) {
			return fmt.Errorf("sign %q is not enabled", args[0])
		}
		emblem, ok := a.renderer.Assets().Emblem(sign.Slug)
		if !ok {
			return fmt.Errorf("no emblem loaded for %s", sign.Name)
		}
		if err := util.EnsureDir(renderOut); err != nil {
			return err
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		for i := 1; i <= renderCount; i++ {
			rec, err := a.gen.Generate(sign)
			if err != nil {
				return err
			}
			b, err := a.renderer.Render(rec, emblem)
			if err != nil {
				return err
			}
			path := filepath.Join(renderOut, fmt.Sprintf("%s-%d.png", sign.Slug, i))
			if err := os.WriteFile(path, b, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s)\n", green("✓"), path, rec.Color, rec.Time)

			lines, err := a.renderer.MessageLines(rec.Message)
			if err != nil {
				return err
			}
			if len(lines) > imagepkg.MaxLines {
				fmt.Fprintf(cmd.OutOrStdout(), "%s message wraps to %d lines, only %d drawn\n",
					yellow("!"), len(lines), imagepkg.MaxLines)
			}
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "out", "output directory")
	renderCmd.Flags().IntVarP(&renderCount, "count", "n", 1, "number of cards to render")
}
