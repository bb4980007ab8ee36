// Package cli implements the calendard terminal client: signup, login, and
// event management against a running server.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"calendard/internal/client"
	"github.com/urfave/cli/v2"
)

// App wraps the urfave/cli application so output and token storage can be
// redirected in tests.
type App struct {
	out       io.Writer
	tokenPath string
}

func NewApp() *App {
	return &App{out: os.Stdout}
}

func (a *App) apiClient(c *cli.Context, needToken bool) (*client.Client, error) {
	token, err := client.LoadToken(a.tokenPath)
	if err != nil {
		return nil, err
	}
	if needToken && token == "" {
		return nil, fmt.Errorf("not logged in; run 'login' first")
	}
	return client.New(c.String("server"), token), nil
}

func (a *App) promptCredentials(c *cli.Context) (string, string, error) {
	username := c.String("username")
	if username == "" {
		return "", "", fmt.Errorf("--username is required")
	}
	password, err := GetPassword(a.out, "Password: ")
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (a *App) Run(ctx context.Context, args []string) error {

	userFlags := []cli.Flag{
		&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "account username"},
	}

	app := &cli.App{
		Name:   "calendard",
		Usage:  "manage your calendard events from the terminal",
		Writer: a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Value:   "http://localhost:8080",
				Usage:   "base URL of the calendard server",
				EnvVars: []string{"CALENDARD_SERVER"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "signup",
				Usage:  "create an account and store its session token",
				Flags:  userFlags,
				Action: a.cmdSignup,
			},
			{
				Name:   "login",
				Usage:  "log in and store the session token",
				Flags:  userFlags,
				Action: a.cmdLogin,
			},
			{
				Name:   "whoami",
				Usage:  "show the logged-in user and their friends",
				Action: a.cmdWhoami,
			},
			{
				Name:   "list",
				Usage:  "list your events",
				Action: a.cmdList,
			},
			{
				Name:  "add",
				Usage: "create an event",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "start", Required: true, Usage: "wire timestamp (YYYY-MM-DDTHH:MM:SS, zero-based month)"},
					&cli.StringFlag{Name: "end", Required: true},
					&cli.StringFlag{Name: "description", Value: ""},
				},
				Action: a.cmdAdd,
			},
			{
				Name:  "edit",
				Usage: "update fields of an event",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "start"},
					&cli.StringFlag{Name: "end"},
					&cli.StringFlag{Name: "description"},
				},
				Action: a.cmdEdit,
			},
			{
				Name:  "rm",
				Usage: "delete an event",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
				},
				Action: a.cmdRemove,
			},
			{
				Name:   "export",
				Usage:  "download your calendar as an .ics file",
				Action: a.cmdExport,
			},
		},
	}

	return app.RunContext(ctx, args)
}

func (a *App) cmdSignup(c *cli.Context) error {
	username, password, err := a.promptCredentials(c)
	if err != nil {
		return err
	}

	api, err := a.apiClient(c, false)
	if err != nil {
		return err
	}

	token, err := api.Signup(c.Context, username, password)
	if err != nil {
		return err
	}

	if err := client.SaveToken(a.tokenPath, token); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "signed up as %s\n", username)
	return nil
}

func (a *App) cmdLogin(c *cli.Context) error {
	username, password, err := a.promptCredentials(c)
	if err != nil {
		return err
	}

	api, err := a.apiClient(c, false)
	if err != nil {
		return err
	}

	user, err := api.Login(c.Context, username, password)
	if err != nil {
		return err
	}

	if err := client.SaveToken(a.tokenPath, user.Token); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s\n", user.Username)
	return nil
}

func (a *App) cmdWhoami(c *cli.Context) error {
	api, err := a.apiClient(c, true)
	if err != nil {
		return err
	}

	user, err := api.Self(c.Context)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", user.Username, user.ID)
	for _, f := range user.Friends {
		fmt.Fprintf(a.out, "  friend: %s (%s)\n", f.Username, f.ID)
	}
	return nil
}

func (a *App) cmdList(c *cli.Context) error {
	api, err := a.apiClient(c, true)
	if err != nil {
		return err
	}

	result, err := api.ListEvents(c.Context)
	if err != nil {
		return err
	}

	a.printEvents(result)
	return nil
}

func (a *App) cmdAdd(c *cli.Context) error {
	api, err := a.apiClient(c, true)
	if err != nil {
		return err
	}

	event, err := api.CreateEvent(c.Context, c.String("name"), c.String("start"), c.String("end"), c.String("description"))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created %s\n", event.ID)
	return nil
}

func (a *App) cmdEdit(c *cli.Context) error {
	api, err := a.apiClient(c, true)
	if err != nil {
		return err
	}

	patch := client.EventPatch{ID: c.String("id")}
	for flagName, target := range map[string]**string{
		"name":        &patch.Name,
		"start":       &patch.Start,
		"end":         &patch.End,
		"description": &patch.Description,
	} {
		if c.IsSet(flagName) {
			v := c.String(flagName)
			*target = &v
		}
	}

	event, err := api.UpdateEvent(c.Context, patch)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated %s\n", event.ID)
	return nil
}

func (a *App) cmdRemove(c *cli.Context) error {
	api, err := a.apiClient(c, true)
	if err != nil {
		return err
	}

	remaining, err := api.DeleteEvent(c.Context, c.String("id"))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted; %d event(s) remaining\n", len(remaining))
	return nil
}

func (a *App) cmdExport(c *cli.Context) error {
	api, err := a.apiClient(c, true)
	if err != nil {
		return err
	}

	data, err := api.ExportICS(c.Context)
	if err != nil {
		return err
	}

	_, err = a.out.Write(data)
	return err
}

func (a *App) printEvents(list []client.Event) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTART\tEND")
	for _, e := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Start, e.End)
	}
	w.Flush()
}
