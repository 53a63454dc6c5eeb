package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"projectpad/internal/docs"
	"projectpad/internal/format"
	"projectpad/internal/model"
	"projectpad/internal/session"
	"projectpad/internal/store"
	"projectpad/internal/tui"
)

type App struct {
	Dir string
}

func (a *App) store() store.Store {
	dir := strings.TrimSpace(a.Dir)
	if dir == "" {
		dir = store.DefaultDir()
	}
	return store.Store{Dir: dir}
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "projectpad",
		Short:        "Popup-sized project list with drag-and-drop nesting",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Open the interactive panel
  projectpad

  # Scriptable commands
  projectpad list
  projectpad add "Ship the release"
  projectpad add --parent proj-abc123de "Write changelog"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive panel.
			if len(args) == 0 {
				return tui.Run(app.store())
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("PROJECTPAD_DIR", ""), "Path to data dir (default: per-user config dir)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newDocsCmd())
	return cmd
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation (topics: " + strings.Join(docs.Topics(), ", ") + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, t := range docs.Topics() {
					fmt.Fprintln(cmd.OutOrStdout(), t)
				}
				return nil
			}
			md, ok := docs.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q (try: %s)", args[0], strings.Join(docs.Topics(), ", "))
			}
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		},
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func newListCmd(app *App) *cobra.Command {
	var asJSON, pretty bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the project tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.store()
			t, _, err := s.LoadTree(context.Background())
			if err != nil {
				return err
			}
			if asJSON {
				return format.WriteJSON(cmd.OutOrStdout(), t, pretty)
			}
			printTree(cmd.OutOrStdout(), t, 0)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the tree as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output (with --json)")
	return cmd
}

func printTree(w io.Writer, nodes []model.Node, depth int) {
	for i := range nodes {
		n := nodes[i]
		title := n.Title
		if strings.TrimSpace(title) == "" {
			title = model.UnnamedTitle
		}
		fmt.Fprintf(w, "%s%s  %s\n", strings.Repeat("  ", depth), title, n.ID)
		printTree(w, n.Children, depth+1)
	}
}

func newAddCmd(app *App) *cobra.Command {
	var parentID string
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a project (root, or under --parent)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.store()
			ctx := context.Background()
			t, _, err := s.LoadTree(ctx)
			if err != nil {
				return err
			}

			sess := session.New(t)
			id, ok := sess.Add(strings.TrimSpace(parentID))
			if !ok {
				return fmt.Errorf("cannot add under %q (missing parent or depth limit)", parentID)
			}
			if len(args) == 1 {
				sess.Rename(id, args[0], time.Now())
			}
			if err := s.SaveTree(ctx, sess.Tree); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&parentID, "parent", "", "Parent project id (default: add at root)")
	return cmd
}

func newClearCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear without --force")
			}
			return app.store().SaveTree(context.Background(), nil)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Actually clear the tree")
	return cmd
}

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check and repair the persisted tree (missing/duplicate ids)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := app.store().Doctor(context.Background())
			if err != nil {
				return err
			}
			if rep.Repaired {
				fmt.Fprintf(cmd.OutOrStdout(), "repaired: %d nodes checked, ids reassigned where needed\n", rep.Nodes)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes, all ids unique\n", rep.Nodes)
			}
			return nil
		},
	}
}
