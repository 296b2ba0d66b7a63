// Command catalog inspects, validates and exports scenario catalogs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/malikacodes/nursing-game/internal/nurse"
	"github.com/malikacodes/nursing-game/internal/scenario"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "list":
		err = cmdList(args[1:], stdout)
	case "validate":
		err = cmdValidate(args[1:], stdout)
	case "export":
		err = cmdExport(args[1:], stdout)
	default:
		printUsage(stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s failed: %v\n", args[0], err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: catalog <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  list      list scenarios (-file, -tier, -shift, -spec)")
	fmt.Fprintln(w, "  validate  check catalog files against the schema and content rules")
	fmt.Fprintln(w, "  export    write the built-in catalog as YAML (-out)")
}

func definitions(path string) ([]scenario.Definition, error) {
	if path == "" {
		return scenario.Seed(), nil
	}
	return scenario.LoadFile(path)
}

func cmdList(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	file := fs.String("file", "", "catalog file (default: built-in catalog)")
	tier := fs.String("tier", "new_grad", "experience tier")
	shift := fs.String("shift", "", "only day or night scenarios")
	spec := fs.String("spec", "", "only scenarios open to this specialization")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := nurse.ParseTier(*tier)
	if err != nil {
		return err
	}
	var sp nurse.Specialization
	if *spec != "" {
		if sp, err = nurse.ParseSpecialization(*spec); err != nil {
			return err
		}
	}
	if *shift != "" && !scenario.Shift(*shift).Valid() {
		return fmt.Errorf("shift must be day or night, got %q", *shift)
	}

	defs, err := definitions(*file)
	if err != nil {
		return err
	}
	cat, err := scenario.NewCatalog(t, defs)
	if err != nil {
		return err
	}

	var rows [][]string
	for _, night := range []bool{false, true} {
		name := string(scenario.Day)
		if night {
			name = string(scenario.Night)
		}
		if *shift != "" && *shift != name {
			continue
		}
		pool := cat.Pool(night)
		if sp != "" {
			pool = cat.Eligible(night, sp, nil)
		}
		for _, s := range pool {
			rows = append(rows, []string{s.ID, name, fmt.Sprint(s.Difficulty), specList(s), s.Title})
		}
	}

	r := lipgloss.NewRenderer(stdout)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		Headers("ID", "Shift", "Difficulty", "Specializations", "Title").
		Rows(rows...)
	fmt.Fprintln(stdout, tbl.Render())
	fmt.Fprintf(stdout, "%d scenarios for %s\n", len(rows), t.DisplayName())
	return nil
}

func specList(s *scenario.Scenario) string {
	specs := s.Specializations()
	if len(specs) == 0 {
		return "all"
	}
	names := make([]string, 0, len(specs))
	for _, sp := range specs {
		names = append(names, string(sp))
	}
	return strings.Join(names, ",")
}

func cmdValidate(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one catalog file is required")
	}
	for _, path := range args {
		defs, err := scenario.LoadFile(path)
		if err != nil {
			return err
		}
		for _, t := range nurse.Tiers {
			cat, err := scenario.NewCatalog(t, defs)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(stdout, "%s: %s: %d day, %d night\n", path, t, len(cat.Pool(false)), len(cat.Pool(true)))
		}
	}
	return nil
}

func cmdExport(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("out", "", "output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		return scenario.Export(stdout, scenario.Seed())
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := scenario.Export(f, scenario.Seed()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(stdout, *out)
	return nil
}
