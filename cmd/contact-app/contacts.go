package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joestump/contact-app/internal/config"
	"github.com/joestump/contact-app/internal/contacts"
)

func newContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect stored contacts",
	}
	cmd.AddCommand(newContactsListCmd(), newContactsGetCmd(), newContactsCountCmd())
	return cmd
}

// withService loads config, opens the configured store and runs fn.
func withService(fn func(svc *contacts.Service) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, _, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(contacts.NewService(s))
}

func newContactsListCmd() *cobra.Command {
	var (
		page int
		size int
		name string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *contacts.Service) error {
				var (
					list []*contacts.Contact
					err  error
				)
				if name == "" {
					list, err = svc.FindAll(cmd.Context(), page, size)
				} else {
					list, err = svc.FindAllByName(cmd.Context(), name, page, size)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), list)
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 5, "contacts per page")
	cmd.Flags().StringVar(&name, "name", "", "only contacts whose name contains this text")
	return cmd
}

func newContactsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid contact id %q", args[0])
			}
			return withService(func(svc *contacts.Service) error {
				c, err := svc.FindByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), c)
			})
		},
	}
}

func newContactsCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of stored contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(func(svc *contacts.Service) error {
				n, err := svc.Count(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
				return err
			})
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
