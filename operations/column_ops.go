package operations

import (
	"context"
	"log/slog"

	"github.com/alekLukanen/errs"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	arrowops "github.com/alekLukanen/colops/arrowOps"
	"github.com/alekLukanen/colops/elements"
)

type IColumnOps interface {
	AssignGroups(partition elements.Partition, totalRows int) (*array.Int32, error)
	Scatter(record arrow.Record, targetSize int, selector arrow.Array, fill float64) (arrow.Record, error)
	RemoveMissing(column elements.Column) (elements.Column, error)
}

var _ IColumnOps = (*ColumnOps)(nil)

type ColumnOpsOptions struct {
	// reject partitions where a position belongs to more than one group
	// instead of letting the lowest group label win
	StrictPartitions bool
}

func DefaultColumnOpsOptions() ColumnOpsOptions {
	return ColumnOpsOptions{
		StrictPartitions: false,
	}
}

/*
* ColumnOps is the entry point used by callers of the column operations.
* It logs every call and attaches the call context to returned errors.
 */
type ColumnOps struct {
	logger  *slog.Logger
	mem     *memory.GoAllocator
	options ColumnOpsOptions
}

func NewColumnOps(logger *slog.Logger, mem *memory.GoAllocator, options ColumnOpsOptions) *ColumnOps {
	return &ColumnOps{
		logger:  logger,
		mem:     mem,
		options: options,
	}
}

func (obj *ColumnOps) AssignGroups(partition elements.Partition, totalRows int) (*array.Int32, error) {
	obj.logger.Debug(
		"assigning groups",
		slog.Int("groups", len(partition)),
		slog.Int("totalRows", totalRows),
		slog.Bool("strict", obj.options.StrictPartitions),
	)

	if obj.options.StrictPartitions {
		coverage, err := elements.PartitionCoverage(partition)
		if err != nil {
			return nil, errs.Wrap(err, ErrAssignGroupsFailed)
		}
		obj.logger.Debug("partition is disjoint", slog.Uint64("coveredRows", coverage.GetCardinality()))
	}

	labels, err := arrowops.AssignGroups(obj.mem, partition, totalRows)
	if err != nil {
		return nil, errs.Wrap(err, ErrAssignGroupsFailed)
	}

	if obj.logger.Enabled(context.Background(), slog.LevelDebug) {
		unassigned := arrowops.UnassignedRows(labels)
		obj.logger.Debug("assigned groups", slog.Uint64("unassignedRows", unassigned.GetCardinality()))
	}
	return labels, nil
}

func (obj *ColumnOps) Scatter(record arrow.Record, targetSize int, selector arrow.Array, fill float64) (arrow.Record, error) {
	obj.logger.Debug(
		"scattering record",
		slog.Int64("numCols", record.NumCols()),
		slog.Int64("numRows", record.NumRows()),
		slog.Int("targetSize", targetSize),
		slog.String("selectorType", selector.DataType().Name()),
		slog.Float64("fill", fill),
	)

	scattered, err := arrowops.ScatterRecord(obj.mem, record, targetSize, selector, fill)
	if err != nil {
		return nil, errs.Wrap(err, ErrScatterFailed)
	}
	return scattered, nil
}

func (obj *ColumnOps) RemoveMissing(column elements.Column) (elements.Column, error) {
	obj.logger.Debug(
		"removing missing values",
		slog.String("column", column.Name()),
		slog.String("kind", column.Kind().String()),
		slog.Int("length", column.Len()),
	)

	compacted, err := arrowops.RemoveMissing(obj.mem, column)
	if err != nil {
		return elements.Column{}, errs.Wrap(err, ErrRemoveMissingFailed)
	}

	obj.logger.Debug(
		"removed missing values",
		slog.String("column", column.Name()),
		slog.Int("removed", column.Len()-compacted.Len()),
	)
	return compacted, nil
}
