package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Summarize a slide manifest",
		Long: `Load the slide manifest and print each slide with its resolved source,
dimensions and aspect ratio.

Slides without dimensions are listed with "?" and get no reserved aspect
ratio when displayed.`,
		Usage: "carousel inspect [--manifest FILE]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	var flags sourceFlags
	rest, err := flags.parse(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q", rest[0])
	}

	p, err := loadProject(flags)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %d slides\n\n", p.title, len(p.slides))
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSOURCE\tSIZE\tRATIO\tALT")
	for i, s := range p.slides {
		size, ratio := "?", "-"
		if s.Width > 0 && s.Height > 0 {
			size = fmt.Sprintf("%dx%d", s.Width, s.Height)
		}
		if r, ok := s.AspectRatio(); ok {
			ratio = fmt.Sprintf("%.2f", r)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, displaySource(s.Source), size, ratio, s.Alt)
	}
	return tw.Flush()
}

// displaySource shortens sources under the project directory.
func displaySource(src string) string {
	root, err := filepath.Abs(projectDir)
	if err != nil || !filepath.IsAbs(src) {
		return src
	}
	rel, err := filepath.Rel(root, src)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return src
	}
	return rel
}
