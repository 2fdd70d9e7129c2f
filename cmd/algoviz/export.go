package main

import (
	"fmt"
	"io"

	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/spf13/cobra"
)

func exportJSON(cmd *cobra.Command, args []string) error {
	lg, _, err := record(cmd, args)
	if err != nil {
		return err
	}
	return export.ToFile(outFile, func(w io.Writer) error {
		return export.WriteJSON(w, lg)
	})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	lg, _, err := record(cmd, args)
	if err != nil {
		return err
	}
	return export.ToFile(outFile, func(w io.Writer) error {
		return export.WriteCSV(w, lg)
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	lg, cfg, err := record(cmd, args)
	if err != nil {
		return err
	}
	idx := stepIndex
	if idx < 0 {
		idx += lg.Len()
	}
	if idx < 0 || idx >= lg.Len() {
		return fmt.Errorf("step %d out of range: log has %d steps", stepIndex, lg.Len())
	}
	svg := export.StepSVG(lg.At(idx), cfg.Export.Width, cfg.Export.Height)
	return export.ToFile(outFile, func(w io.Writer) error {
		_, err := io.WriteString(w, svg)
		return err
	})
}

func exportGIF(cmd *cobra.Command, args []string) error {
	lg, cfg, err := record(cmd, args)
	if err != nil {
		return err
	}
	if outFile == "-" {
		return fmt.Errorf("refusing to write a GIF to stdout, use -o")
	}
	return export.ToFile(outFile, func(w io.Writer) error {
		return export.WriteGIF(w, lg, cfg.Export.Width, cfg.Export.Height, cfg.Delay())
	})
}

func exportTree(cmd *cobra.Command, args []string) error {
	lg, cfg, err := record(cmd, args)
	if err != nil {
		return err
	}
	if !sorting.Recursive(cfg.Algorithm) {
		return fmt.Errorf("%s has no recursion tree (try merge or quick)", cfg.Algorithm)
	}
	dot := export.TreeDOT(lg)
	if !treeSVG {
		return export.ToFile(outFile, func(w io.Writer) error {
			_, err := io.WriteString(w, dot)
			return err
		})
	}
	svg, err := export.RenderSVG(cmd.Context(), dot)
	if err != nil {
		return err
	}
	return export.ToFile(outFile, func(w io.Writer) error {
		_, err := w.Write(svg)
		return err
	})
}
