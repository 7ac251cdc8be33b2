package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/constants"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/spf13/cobra"
)

func newSectionsCmd(opts *rootOptions) *cobra.Command {
	var keys []string
	for _, k := range content.Sections() {
		keys = append(keys, string(k))
	}

	return &cobra.Command{
		Use:       "sections <key>",
		Short:     "Print the items of a section",
		Long:      "Prints a section in its current order. Known sections: " + strings.Join(keys, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := opts.app
			for _, it := range app.Store.Section(content.SectionKey(args[0]), app.Lang()) {
				printRow(cmd.OutOrStdout(), app, it)
			}
			return nil
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := opts.app
			it, err := app.Store.Lookup(args[0], app.Lang())
			if err != nil {
				return err
			}
			printArticle(cmd.OutOrStdout(), app, it)
			return nil
		},
	}
}

func newSavedCmd(opts *rootOptions) *cobra.Command {
	var toggle []string

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Toggle bookmarks, then print the saved list",
		Long: `Toggles each id given with --toggle, in order, then prints the saved list.
Bookmarks are kept in memory only and reset on the next run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := opts.app
			for _, id := range toggle {
				app.ToggleBookmark(id)
			}
			for _, it := range app.Store.SavedItems(app.Lang()) {
				printRow(cmd.OutOrStdout(), app, it)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&toggle, "toggle", nil, "Article ids to toggle")
	return cmd
}

func printRow(w io.Writer, app *heritage.App, it content.Item) {
	mark := constants.Unmarked
	if app.Store.IsBookmarked(it.ID) {
		mark = constants.Bookmark
	}
	fmt.Fprintf(w, "%s %-4s %s  [%s]  %s %s  %s %s\n",
		mark, it.ID, it.Title, it.Category,
		constants.Likes, it.Likes, constants.Comments, it.Comments)
}

func printArticle(w io.Writer, app *heritage.App, it content.Item) {
	fmt.Fprintln(w, it.Title)
	fmt.Fprintf(w, "%s · %s · %s\n", it.Category, it.Publisher, it.Timestamp)
	if len(it.Keywords) > 0 {
		fmt.Fprintln(w, strings.Join(it.Keywords, " "))
	}
	for _, p := range it.Content {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Text())
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s %s  %s %s %s\n",
		constants.Likes, it.Likes, app.T("detail_likes"),
		constants.Comments, it.Comments, app.T("detail_comments"))
}
