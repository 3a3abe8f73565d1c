package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"octosupply/pkg/resource"
)

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", s)
	}
	return id, nil
}

func notFound(name string, id int, err error) error {
	if errors.Is(err, resource.ErrNotFound) {
		return fmt.Errorf("%s %d not found", name, id)
	}
	return err
}

// readRecord returns the JSON given by --data, or by --file where "-" is
// standard input.
func readRecord(cmd *cobra.Command) ([]byte, error) {
	data, _ := cmd.Flags().GetString("data")
	file, _ := cmd.Flags().GetString("file")
	switch {
	case data != "" && file != "":
		return nil, errors.New("use either --data or --file, not both")
	case data != "":
		return []byte(data), nil
	case file == "-":
		return io.ReadAll(cmd.InOrStdin())
	case file != "":
		return os.ReadFile(file)
	}
	return nil, errors.New("a record is required: pass --data '<json>' or --file <path>")
}

func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("data", "", "record as a JSON object")
	cmd.Flags().StringP("file", "f", "", "file holding the record as JSON, - for stdin")
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <resource>",
		Short: "List every record of a resource",
		Example: `  octosupply list products
  octosupply list deliveries -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			coll, err := lookupCollection(a.client(), args[0])
			if err != nil {
				return err
			}
			items, err := coll.list(cmd.Context())
			if err != nil {
				return fmt.Errorf("list %s: %w", args[0], err)
			}
			return render(cmd.OutOrStdout(), format, items)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get <resource> <id>",
		Short:   "Show one record",
		Example: `  octosupply get branches 1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			coll, err := lookupCollection(a.client(), args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			v, err := coll.get(cmd.Context(), id)
			if err != nil {
				return notFound(args[0], id, err)
			}
			return render(cmd.OutOrStdout(), format, v)
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <resource>",
		Short: "Append a record",
		Long: `Create appends the record as given. The server assigns nothing:
the id in the record is the id it will be found under.`,
		Example: `  octosupply create branches --data '{"branchId":3,"headquartersId":1,"name":"Calico Corner"}'
  cat order.json | octosupply create orders -f -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			coll, err := lookupCollection(a.client(), args[0])
			if err != nil {
				return err
			}
			data, err := readRecord(cmd)
			if err != nil {
				return err
			}
			v, err := coll.create(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			return render(cmd.OutOrStdout(), format, v)
		},
	}
	addRecordFlags(cmd)
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <resource> <id>",
		Short: "Replace a record",
		Long: `Update replaces the whole record. Fields missing from the new
record are not kept from the old one.`,
		Example: `  octosupply update suppliers 2 --data '{"supplierId":2,"name":"WhiskerWare"}'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format()
			if err != nil {
				return err
			}
			coll, err := lookupCollection(a.client(), args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			data, err := readRecord(cmd)
			if err != nil {
				return err
			}
			v, err := coll.update(cmd.Context(), id, data)
			if err != nil {
				return notFound(args[0], id, err)
			}
			return render(cmd.OutOrStdout(), format, v)
		},
	}
	addRecordFlags(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <resource> <id>",
		Short:   "Remove a record",
		Example: `  octosupply delete order-details 3`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coll, err := lookupCollection(a.client(), args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			if err := coll.remove(cmd.Context(), id); err != nil {
				return notFound(args[0], id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", args[0], id)
			return nil
		},
	}
}
