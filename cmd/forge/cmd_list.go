package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"deckforge/internal/store"
)

var (
	listFilter  string
	listByTitle bool
)

// listCmd prints stored presentations.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presentations",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "title substring filter")
	listCmd.Flags().BoolVar(&listByTitle, "by-title", false, "sort by title instead of last update")
}

func runList(cmd *cobra.Command, args []string) error {
	deps, cleanup, err := buildDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	order := store.OrderUpdatedDesc
	if listByTitle {
		order = store.OrderTitle
	}
	decks, err := deps.Store.List(store.Filter{TitleContains: listFilter}, order)
	if err != nil {
		return err
	}

	if len(decks) == 0 {
		fmt.Println("No presentations yet. Try: forge generate \"your topic\"")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSLIDES\tTHEME\tUPDATED")
	for _, p := range decks {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			p.ID, p.Title, p.SlideCount(), p.Theme,
			p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
