package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/sharehouse/internal/household"
	"github.com/idilsaglam/sharehouse/internal/logger"
	"github.com/idilsaglam/sharehouse/internal/model"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

func choresCmd(e **env) *cobra.Command {
	var group bool

	c := &cobra.Command{
		Use:   "chores",
		Short: "List chores and your points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr := (*e).state.Chores
			t := ui.Current()

			var pending, done []model.Chore
			for _, c := range tr.Chores() {
				if c.Done {
					done = append(done, c)
				} else {
					pending = append(pending, c)
				}
			}

			lines := []string{
				fmt.Sprintf("%s  %s %d  %s %d  %s %d pts",
					t.Title.Render("My Chores"),
					t.Success.Render(t.SymDone), len(done),
					t.Pending.Render(t.SymPending), len(pending),
					t.Accent.Render("Points"), tr.Points()),
				"",
			}
			if group {
				lines = append(lines, t.Accent.Render("Pending"))
				lines = append(lines, choreLines(pending)...)
				lines = append(lines, "", t.Accent.Render("Done"))
				lines = append(lines, choreLines(done)...)
			} else {
				lines = append(lines, choreLines(pending)...)
			}
			lines = append(lines, "", t.Muted.Render("Tip: finish one with `sharehouse chores done <id>`"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(lines))
			return nil
		},
	}
	c.Flags().BoolVar(&group, "group", false, "show done chores too, grouped by pending/done")
	c.AddCommand(choresDoneCmd(e))
	return c
}

func choresDoneCmd(e **env) *cobra.Command {
	var yes bool

	c := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a chore done and collect its points",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("usage: sharehouse chores done <id>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cur := *e
			id := args[0]

			prompt, ok := cur.state.Chores.RequestCompletion(id)
			if !ok {
				ui.Hint("run `sharehouse chores` to see pending chore ids")
				return usagef("no pending chore with id %q", id)
			}
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt.Title+" "+prompt.Message) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Current().Muted.Render("cancelled"))
				return nil
			}

			before := cur.state.Chores.Points()
			next, _ := cur.state.Chores.Confirm(id)
			cur.state.Chores = next
			if err := cur.state.Save(cur.writer, household.KeyChores, household.KeyPoints); err != nil {
				return err
			}
			logger.L().Info("chore.confirmed", "id", id, "total", next.Points())
			ui.OK(fmt.Sprintf("+%d pts (total %d)", next.Points()-before, next.Points()))
			return nil
		},
	}
	c.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return c
}

// confirm asks a yes/no question; anything but y/yes is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func choreLines(chores []model.Chore) []string {
	t := ui.Current()
	if len(chores) == 0 {
		return []string{t.Muted.Render("(none)")}
	}
	out := make([]string, 0, len(chores))
	for _, c := range chores {
		box := t.Muted.Render(t.BoxUnchecked)
		name := c.Name
		if c.Done {
			box = t.Success.Render(t.BoxChecked)
			name = t.Done.Render(name)
		}
		out = append(out, fmt.Sprintf("%s %s %s %s",
			t.Muted.Render(fmt.Sprintf("[%s]", c.ID)), box, name,
			t.Muted.Render(fmt.Sprintf("+%d", c.Points))))
	}
	return out
}
