package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lector-pages/internal/config"
	"lector-pages/internal/domain"
	"lector-pages/internal/service"

	"github.com/spf13/cobra"
)

type containerFactory func() *config.Container

func paginateCmd(newContainer containerFactory) *cobra.Command {
	var words int
	var format string
	var title string

	cmd := &cobra.Command{
		Use:   "paginate <file>",
		Short: "Extract a local document and print its pages as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container := newContainer()
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			f := domain.ParseFormat(format)
			if f == "" {
				head := data
				if len(head) > 512 {
					head = head[:512]
				}
				f = container.Extractors.Detect(filepath.Base(path), "", head)
			}

			text, err := container.Extractors.Extract(cmd.Context(), data, f)
			if err != nil {
				return err
			}

			if words <= 0 {
				words = container.GetConfig().GetPageSize()
			}
			if title == "" {
				title = domain.DefaultTitle
			}
			return printJSON(cmd.OutOrStdout(), domain.NewDocument(title, service.Paginate(text, words)))
		},
	}
	cmd.Flags().IntVarP(&words, "words", "w", 0, "words per page (default: PAGE_SIZE or 300)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "document format; detected from the file when empty")
	cmd.Flags().StringVarP(&title, "title", "t", "", "document title")
	return cmd
}

func importCmd(newContainer containerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "import <book-id>",
		Short: "Download a catalog book's plain text and print its pages as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book id %q: %w", args[0], err)
			}
			doc, err := newContainer().IngestionService.Import(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	}
}

func searchCmd(newContainer containerFactory) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the book catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := newContainer().IngestionService.Search(cmd.Context(), strings.Join(args, " "), lang)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", domain.DefaultSearchLang, "catalog language filter")
	return cmd
}

func formatsCmd(newContainer containerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported upload formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), newContainer().Extractors.Formats())
		},
	}
}
