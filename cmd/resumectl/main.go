package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/client"
	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/editor"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

const usage = `Usage: resumectl [-api URL] [-timeout D] <command> [args]

Commands:
  list                  list saved resumes, most recently updated first
  show ID               print a text preview of a resume
  print ID [-o FILE]    render a printable HTML document
  save FILE [-id ID]    save a resume from a JSON draft file
  delete ID             delete a resume
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "cannot load config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("resumectl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	apiURL := fs.String("api", cfg.Client.APIURL, "resume service base URL")
	timeout := fs.Duration("timeout", cfg.Client.Timeout, "request timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	api, err := client.New(*apiURL, &http.Client{Timeout: *timeout})
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	ctrl := editor.NewController(api, logger.NewNopLogger())

	ctx := context.Background()
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "list":
		err = listCmd(ctx, ctrl, stdout)
	case "show":
		err = showCmd(ctx, ctrl, rest, stdout)
	case "print":
		err = printCmd(ctx, ctrl, rest, stdout, stderr)
	case "save":
		err = saveCmd(ctx, ctrl, rest, stdout, stderr)
	case "delete":
		err = deleteCmd(ctx, ctrl, rest, stdout)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	if err != nil {
		var usageErr usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "%v\n", err)
			fs.Usage()
			return 2
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

type usageError string

func (e usageError) Error() string { return string(e) }

func parseID(args []string) (uuid.UUID, error) {
	if len(args) < 1 {
		return uuid.Nil, usageError("missing resume ID")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, usageError(fmt.Sprintf("invalid resume ID %q", args[0]))
	}
	return id, nil
}

// parseInterspersed allows flags both before and after the single positional
// argument.
func parseInterspersed(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", usageError(err.Error())
	}
	if fs.NArg() == 0 {
		return "", nil
	}
	positional := fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return "", usageError(err.Error())
	}
	return positional, nil
}

func listCmd(ctx context.Context, ctrl *editor.Controller, stdout io.Writer) error {
	if err := ctrl.Refresh(ctx); err != nil {
		return err
	}
	saved := ctrl.Saved()
	if len(saved) == 0 {
		fmt.Fprintln(stdout, "No saved resumes")
		return nil
	}
	for _, r := range saved {
		fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", r.ID, r.FullName, r.ResumeType, r.UpdatedAt.Format(time.RFC3339))
	}
	return nil
}

func showCmd(ctx context.Context, ctrl *editor.Controller, args []string, stdout io.Writer) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := ctrl.Load(ctx, id); err != nil {
		return err
	}
	return editor.RenderText(stdout, ctrl.Preview())
}

func printCmd(ctx context.Context, ctrl *editor.Controller, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("o", "", "write HTML to this file instead of stdout")
	raw, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	var positional []string
	if raw != "" {
		positional = []string{raw}
	}
	id, err := parseID(positional)
	if err != nil {
		return err
	}

	if err := ctrl.Load(ctx, id); err != nil {
		return err
	}

	if *out == "" {
		return editor.RenderHTML(stdout, ctrl.Preview())
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := editor.RenderHTML(f, ctrl.Preview()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", *out)
	return nil
}

func saveCmd(ctx context.Context, ctrl *editor.Controller, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	fs.SetOutput(stderr)
	idFlag := fs.String("id", "", "replace this resume instead of creating a new one")
	path, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if path == "" {
		return usageError("missing draft file")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var candidate resume.Candidate
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if *idFlag != "" {
		id, err := parseID([]string{*idFlag})
		if err != nil {
			return err
		}
		if err := ctrl.Load(ctx, id); err != nil {
			return err
		}
	}
	ctrl.Import(candidate)

	stored, err := ctrl.Save(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved %s (updated %s)\n", stored.ID, stored.UpdatedAt.Format(time.RFC3339))
	return nil
}

func deleteCmd(ctx context.Context, ctrl *editor.Controller, args []string, stdout io.Writer) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := ctrl.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Resume deleted successfully")
	return nil
}
