package main

import (
	"log/slog"

	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/spf13/cobra"

	"github.com/alekLukanen/colops/elements"
	"github.com/alekLukanen/colops/operations"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "assign-groups",
		Short: "Build a group label vector from a partition of row positions",
		Args:  cobra.NoArgs,
		RunE:  assignGroups}
	cmd.Flags().Int("rows", 0, "number of rows in the output")
	cmd.Flags().StringArray("group", nil, "comma separated 1-based row positions of one group (repeatable)")
	cmd.Flags().Bool("strict", false, "reject groups that share a position")
	cmd.MarkFlagRequired("rows")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "scatter",
		Short: "Scatter columns into a larger target using positions or a mask",
		Args:  cobra.NoArgs,
		RunE:  scatter}
	cmd.Flags().Int("size", 0, "number of rows in the target")
	cmd.Flags().Int32Slice("positions", nil, "1-based target position of each source row")
	cmd.Flags().BoolSlice("mask", nil, "target mask, true slots consume source rows in order")
	cmd.Flags().Int32Slice("mask-positions", nil, "1-based target positions of the true mask slots")
	cmd.Flags().String("fill", "NA", "value for target rows without a source row")
	cmd.Flags().StringArray("column", nil, "source column as name=v1,v2,... (repeatable)")
	cmd.MarkFlagRequired("size")
	cmd.MarkFlagsMutuallyExclusive("positions", "mask", "mask-positions")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "remove-missing value*",
		Short: "Remove missing values from a vector",
		RunE:  removeMissing}
	// values such as -3 are arguments, not shorthand flags
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().String("kind", "real", "element kind, 'integer', 'logical', 'real' or 'string'")
	cmd.Flags().String("name", "x", "column name")
	root.AddCommand(cmd)
}

// Represents the state used when processing a command.
type Action struct {
	cmd     *cobra.Command
	mem     *memory.GoAllocator
	printer *printer
	logger  *slog.Logger
	ops     operations.IColumnOps
}

func newAction(cmd *cobra.Command) *Action {
	logger := newLogger(getString(cmd, "log-level")).With("command", cmd.Name())
	mem := memory.NewGoAllocator()
	options := operations.DefaultColumnOpsOptions()
	if cmd.Flags().Lookup("strict") != nil {
		options.StrictPartitions = getBool(cmd, "strict")
	}
	return &Action{
		cmd:     cmd,
		mem:     mem,
		printer: newPrinter(cmd.OutOrStdout(), getString(cmd, "format")),
		logger:  logger,
		ops:     operations.NewColumnOps(logger, mem, options),
	}
}

func assignGroups(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)

	partition, err := parseGroups(action.mem, getStringArray(cmd, "group"))
	if err != nil {
		return err
	}
	defer partition.Release()

	labels, err := action.ops.AssignGroups(partition, getInt(cmd, "rows"))
	if err != nil {
		return logFailure(action.logger, "assign-groups failed", err)
	}
	defer labels.Release()

	return action.printer.printArray("group", labels)
}

func scatter(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)

	fill, err := parseFloatToken(getString(cmd, "fill"))
	if err != nil {
		return err
	}

	record, err := parseColumns(action.mem, getStringArray(cmd, "column"))
	if err != nil {
		return err
	}
	defer record.Release()

	selector, err := buildSelector(action.mem, cmd, getInt(cmd, "size"))
	if err != nil {
		return err
	}
	defer selector.Release()

	scattered, err := action.ops.Scatter(record, getInt(cmd, "size"), selector, fill)
	if err != nil {
		return logFailure(action.logger, "scatter failed", err)
	}
	defer scattered.Release()

	return action.printer.printRecord(scattered)
}

func removeMissing(cmd *cobra.Command, args []string) error {
	action := newAction(cmd)

	kind := elements.ParseKind(getString(cmd, "kind"))
	column, err := parseValues(action.mem, getString(cmd, "name"), kind, args)
	if err != nil {
		return err
	}
	defer column.Release()

	compacted, err := action.ops.RemoveMissing(column)
	if err != nil {
		return logFailure(action.logger, "remove-missing failed", err)
	}
	defer compacted.Release()

	return action.printer.printArray(compacted.Name(), compacted.Data)
}

func getBool(cmd *cobra.Command, name string) bool {
	result, _ := cmd.Flags().GetBool(name)
	return result
}

func getInt(cmd *cobra.Command, name string) int {
	result, _ := cmd.Flags().GetInt(name)
	return result
}

func getString(cmd *cobra.Command, name string) string {
	result, _ := cmd.Flags().GetString(name)
	return result
}

func getStringArray(cmd *cobra.Command, name string) []string {
	result, _ := cmd.Flags().GetStringArray(name)
	return result
}
