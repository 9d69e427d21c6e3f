package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/loom/internal/story"
)

type storiesOptions struct {
	jsonOutput bool
	group      string
}

func newStoriesCmd() *cobra.Command {
	opts := &storiesOptions{}

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List gallery stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStories(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.group, "group", "", "Only list stories in this group (case-insensitive)")

	return cmd
}

type storyRow struct {
	ID    string `json:"id"`
	Group string `json:"group"`
	Title string `json:"title"`
}

func runStories(cmd *cobra.Command, opts *storiesOptions) error {
	var rows []storyRow
	for _, s := range story.Catalog().List() {
		if opts.group != "" && !strings.EqualFold(s.Group, opts.group) {
			continue
		}
		rows = append(rows, storyRow{ID: string(s.ID), Group: s.Group, Title: s.Title})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if rows == nil {
			rows = []storyRow{}
		}
		return encoder.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stories found.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tGROUP\tTITLE")
	for _, row := range rows {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", row.ID, row.Group, row.Title)
	}
	return writer.Flush()
}
