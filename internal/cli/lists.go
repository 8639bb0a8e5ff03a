package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/sharehouse/internal/checklist"
	"github.com/idilsaglam/sharehouse/internal/household"
	"github.com/idilsaglam/sharehouse/internal/model"
	"github.com/idilsaglam/sharehouse/internal/ui"
)

// listCmd builds the grocery or cleaning command group. Both share the same
// subcommands except rm, which only cleaning tasks support.
func listCmd(e **env, name, title string) *cobra.Command {
	kind := checklist.Grocery
	key := household.KeyGroceries
	if name == "cleaning" {
		kind = checklist.Cleaning
		key = household.KeyCleaning
	}

	get := func() checklist.List {
		if kind == checklist.Cleaning {
			return (*e).state.Cleaning
		}
		return (*e).state.Groceries
	}
	put := func(l checklist.List) error {
		if kind == checklist.Cleaning {
			(*e).state.Cleaning = l
		} else {
			(*e).state.Groceries = l
		}
		return (*e).state.Save((*e).writer, key)
	}

	c := &cobra.Command{
		Use:   name,
		Short: title,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown %s subcommand: %s", name, args[0])
			}
			return cmd.Help()
		},
	}

	var group bool
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel(listLines(title, get(), group)))
			return nil
		},
	}
	ls.Flags().BoolVar(&group, "group", false, "group output by pending/done")

	add := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an entry (text can be multiple words)",
		RunE: func(_ *cobra.Command, args []string) error {
			next, changed := get().Add(strings.Join(args, " "))
			if !changed {
				return usagef("usage: sharehouse %s add <text...>", name)
			}
			if err := put(next); err != nil {
				return err
			}
			ui.OK("added")
			return nil
		},
	}

	done := &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for the entry at 1-based index",
		RunE: func(_ *cobra.Command, args []string) error {
			l := get()
			idx, err := parseIndex(name, "done", args, l.Len())
			if err != nil {
				return err
			}
			next, _ := l.Toggle(idx)
			if err := put(next); err != nil {
				return err
			}
			ui.OK("toggled")
			return nil
		},
	}

	c.AddCommand(ls, add, done)

	if kind.CanDelete() {
		c.AddCommand(&cobra.Command{
			Use:   "rm <index>",
			Short: "Remove the entry at 1-based index",
			RunE: func(_ *cobra.Command, args []string) error {
				l := get()
				idx, err := parseIndex(name, "rm", args, l.Len())
				if err != nil {
					return err
				}
				next, _ := l.Delete(idx)
				if err := put(next); err != nil {
					return err
				}
				ui.OK("removed")
				return nil
			},
		})
	}
	return c
}

// parseIndex turns a 1-based index argument into a 0-based position.
func parseIndex(list, verb string, args []string, n int) (int, error) {
	if len(args) != 1 {
		return 0, usagef("usage: sharehouse %s %s <index>", list, verb)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, usagef("%s: not a number: %s", verb, args[0])
	}
	if i < 1 || i > n {
		ui.Hint(fmt.Sprintf("run `sharehouse %s ls` to see valid indexes", list))
		return 0, usagef("index out of range: have %d, got %d", n, i)
	}
	return i - 1, nil
}

func listLines(title string, l checklist.List, group bool) []string {
	t := ui.Current()
	d, p := l.Stats()
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			t.Title.Render(title),
			t.Success.Render(t.SymDone), d,
			t.Pending.Render(t.SymPending), p,
			t.Accent.Render("Total"), l.Len()),
		t.Muted.Render(ui.ProgressBar(d, d+p, 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(l.Items())...)
	} else {
		items := l.Items()
		pos := make([]int, len(items))
		for i := range pos {
			pos[i] = i
		}
		lines = append(lines, flatLines(items, pos)...)
	}
	return lines
}

// maxText is the display width an item's text is cut to in listings.
const maxText = 80

// flatLines numbers each item by pos, its index in the whole list.
func flatLines(items []model.Item, pos []int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		text := ansi.Truncate(it.Text, maxText, "...")
		box := t.Muted.Render(t.BoxUnchecked)
		if it.Done {
			box, text = t.Success.Render(t.BoxChecked), t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", pos[i]+1)), box, text))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var (
		pend, done       []model.Item
		pendPos, donePos []int
	)
	for i, it := range items {
		if it.Done {
			done, donePos = append(done, it), append(donePos, i)
		} else {
			pend, pendPos = append(pend, it), append(pendPos, i)
		}
	}
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend, pendPos)...)
	}
	lines = append(lines, "", t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done, donePos)...)
	}
	return lines
}
