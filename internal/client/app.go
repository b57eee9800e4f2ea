package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-label-keeper/internal/adapter"
	"github.com/MKhiriev/go-label-keeper/internal/issuefilter"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/models"
)

// Usage is printed when no command or an unknown command is given.
const Usage = `usage: labels-client [-server URL] [-token TOKEN] [-timeout 15s] <command> [flags]

commands:
  list     -project ID [-state opened|closed|all] [-labels a,b] [-milestone TITLE]
  create   -project ID -name NAME -color #RRGGBB [-description TEXT]
  delete   -project ID -name NAME
  update   -project ID -name NAME [-new-name NAME] [-color #RRGGBB] [-description TEXT]
  version
`

type App struct {
	labels adapter.LabelsClient
	out    io.Writer
	logger *logger.Logger
}

// NewApp constructs an [App] printing results to out.
func NewApp(labels adapter.LabelsClient, out io.Writer, logger *logger.Logger) *App {
	return &App{labels: labels, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running client command")

	err := a.dispatch(ctx, command, rest)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (a *App) dispatch(ctx context.Context, command string, rest []string) error {
	switch command {
	case "help", "-h", "-help", "--help":
		_, err := fmt.Fprint(a.out, Usage)
		return err
	case "list":
		return a.list(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	project := fs.String("project", "", "project id or URL-encoded path")
	state := optionalFlag(fs, "state", "issue state: opened, closed or all")
	labels := optionalFlag(fs, "labels", "comma separated label titles")
	milestone := optionalFlag(fs, "milestone", "milestone title")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if *project == "" {
		return ErrProjectMissing
	}

	result, err := a.labels.ListLabels(ctx, *project, issuefilter.Filter{
		State:     state.value(),
		Labels:    labels.value(),
		Milestone: milestone.value(),
	})
	if err != nil {
		return err
	}

	return a.print(result)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("create")
	project := fs.String("project", "", "project id or URL-encoded path")
	name := fs.String("name", "", "label title")
	color := fs.String("color", "", "6-digit hex color with leading '#'")
	description := optionalFlag(fs, "description", "label description")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireLabelTarget(*project, *name); err != nil {
		return err
	}

	label, err := a.labels.CreateLabel(ctx, *project, models.CreateLabelRequest{
		Name:        *name,
		Color:       *color,
		Description: description.value(),
	})
	if err != nil {
		return err
	}

	return a.print(label)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	project := fs.String("project", "", "project id or URL-encoded path")
	name := fs.String("name", "", "label title")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireLabelTarget(*project, *name); err != nil {
		return err
	}

	label, err := a.labels.DeleteLabel(ctx, *project, *name)
	if err != nil {
		return err
	}

	return a.print(label)
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	project := fs.String("project", "", "project id or URL-encoded path")
	name := fs.String("name", "", "current label title")
	newName := optionalFlag(fs, "new-name", "new label title")
	color := optionalFlag(fs, "color", "new 6-digit hex color with leading '#'")
	description := optionalFlag(fs, "description", "new description")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if err := requireLabelTarget(*project, *name); err != nil {
		return err
	}

	label, err := a.labels.UpdateLabel(ctx, *project, models.UpdateLabelRequest{
		Name:        *name,
		NewName:     newName.value(),
		Color:       color.value(),
		Description: description.value(),
	})
	if err != nil {
		return err
	}

	return a.print(label)
}

func (a *App) version(ctx context.Context) error {
	version, err := a.labels.ServerVersion(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func requireLabelTarget(project, name string) error {
	if project == "" {
		return ErrProjectMissing
	}
	if name == "" {
		return ErrLabelNameMissing
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags prints the flag defaults of the subcommand to out on -h and
// returns flag.ErrHelp.
func (a *App) parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(a.out, "usage of %s:\n", fs.Name())
		fs.SetOutput(a.out)
		fs.PrintDefaults()
		return flag.ErrHelp
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	return nil
}

// optionalString is a flag.Value that remembers whether it was set, so an
// explicit empty value can be told apart from an omitted flag.
type optionalString struct {
	set bool
	v   string
}

func optionalFlag(fs *flag.FlagSet, name, usage string) *optionalString {
	o := &optionalString{}
	fs.Var(o, name, usage)
	return o
}

func (o *optionalString) String() string {
	if o == nil {
		return ""
	}
	return o.v
}

func (o *optionalString) Set(s string) error {
	o.set = true
	o.v = s
	return nil
}

func (o *optionalString) value() *string {
	if !o.set {
		return nil
	}
	v := o.v
	return &v
}
