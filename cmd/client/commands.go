package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/greenwall/internal/adapter"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/models"
)

const usage = `usage: client [global flags] <command> [flags]

commands:
  signup  -email -password [-name]   create an account and start a session
  signin  -email -password           start a session
  signout                            forget the saved session
  write   -text -emoji [-mood] [-date YYYY-MM-DD]
  list    [-from YYYY-MM-DD] [-to YYYY-MM-DD]
  show    -id
  edit    -id [-text] [-mood] [-emoji]
  delete  -id
  count
  version
`

var errUsage = errors.New("invalid usage")

type sessionStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type cli struct {
	client adapter.Client
	tokens sessionStore
	out    io.Writer
	logger *logger.Logger
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(c.out, usage)
		return errUsage
	}

	name, rest := args[0], args[1:]

	switch name {
	case "signup":
		return c.signUp(ctx, rest)
	case "signin":
		return c.signIn(ctx, rest)
	case "signout":
		return c.tokens.Clear()
	case "version":
		return c.version(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	}

	if err := c.restoreSession(); err != nil {
		return err
	}

	switch name {
	case "write":
		return c.write(ctx, rest)
	case "list":
		return c.list(ctx, rest)
	case "show":
		return c.show(ctx, rest)
	case "edit":
		return c.edit(ctx, rest)
	case "delete":
		return c.delete(ctx, rest)
	case "count":
		return c.count(ctx)
	default:
		fmt.Fprint(c.out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
}

func (c *cli) restoreSession() error {
	token, err := c.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("%w: run signin first", adapter.ErrNotSignedIn)
	}

	c.client.SetToken(token)
	return nil
}

func (c *cli) signUp(ctx context.Context, args []string) error {
	fs := newFlagSet("signup")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "full name shown on the profile")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.client.SignUp(ctx, models.SignUpRequest{Email: *email, Password: *password, FullName: *name})
	if err != nil {
		return err
	}

	if err = c.tokens.Save(c.client.Token()); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "signed up as %s\n", user.Email)
	return nil
}

func (c *cli) signIn(ctx context.Context, args []string) error {
	fs := newFlagSet("signin")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.client.SignIn(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	if err = c.tokens.Save(c.client.Token()); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "signed in as %s\n", user.Email)
	return nil
}

func (c *cli) write(ctx context.Context, args []string) error {
	fs := newFlagSet("write")
	var input models.NoteInput
	fs.StringVar(&input.Text, "text", "", "note text")
	fs.StringVar(&input.Mood, "mood", "", "mood label")
	fs.StringVar(&input.Emoji, "emoji", "", "emoji marker")
	fs.StringVar(&input.Date, "date", "", "note date, defaults to today")
	if err := fs.Parse(args); err != nil {
		return err
	}

	note, err := c.client.CreateNote(ctx, input)
	if err != nil {
		return err
	}

	c.logger.Debug().Str("note_id", note.ID).Msg("note written")
	fmt.Fprintf(c.out, "%s %s\n", note.ID, note.Date)
	return nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	from := fs.String("from", "", "first date, inclusive")
	to := fs.String("to", "", "last date, inclusive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	notes, err := c.client.ListNotes(ctx, *from, *to)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tEMOJI\tMOOD\tEDITABLE\tTEXT")
	for _, note := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
			note.ID, note.Date, note.Emoji, note.Mood, note.Editable, firstLine(note.Text))
	}

	return tw.Flush()
}

func (c *cli) show(ctx context.Context, args []string) error {
	fs := newFlagSet("show")
	id := fs.String("id", "", "note id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	note, err := c.client.GetNote(ctx, *id)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s %s %s\n\n%s\n", note.Date, note.Emoji, note.Mood, note.Text)
	return nil
}

// edit sends only the fields given on the command line, so an explicit
// empty -mood clears the mood while an absent one leaves it alone.
func (c *cli) edit(ctx context.Context, args []string) error {
	fs := newFlagSet("edit")
	id := fs.String("id", "", "note id")
	text := fs.String("text", "", "new text")
	mood := fs.String("mood", "", "new mood")
	emoji := fs.String("emoji", "", "new emoji")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update models.NoteUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			update.Text = text
		case "mood":
			update.Mood = mood
		case "emoji":
			update.Emoji = emoji
		}
	})
	if update.IsEmpty() {
		return fmt.Errorf("%w: edit needs at least one of -text, -mood, -emoji", errUsage)
	}

	note, err := c.client.UpdateNote(ctx, *id, update)
	if err != nil {
		if errors.Is(err, adapter.ErrForbidden) {
			return fmt.Errorf("note %s can no longer be changed: %w", *id, err)
		}
		return err
	}

	fmt.Fprintf(c.out, "updated %s\n", note.ID)
	return nil
}

func (c *cli) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	id := fs.String("id", "", "note id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.client.DeleteNote(ctx, *id); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "deleted %s\n", *id)
	return nil
}

func (c *cli) count(ctx context.Context) error {
	count, err := c.client.CountNotes(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, count)
	return nil
}

func (c *cli) version(ctx context.Context) error {
	fmt.Fprint(c.out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	v, err := c.client.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Server version: %s\n", v.Version)
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func firstLine(s string) string {
	line, _, cut := strings.Cut(s, "\n")
	if cut {
		return line + " …"
	}
	return line
}
