package elements

import (
	"github.com/apache/arrow/go/v17/arrow"
)

// Kind is the element kind of a column as seen by the assignment
// operations. Every arrow type maps to exactly one kind.
type Kind int

const (
	KindUnsupported Kind = iota
	KindInteger
	KindLogical
	KindReal
	KindString
)

func (obj Kind) String() string {
	switch obj {
	case KindInteger:
		return "integer"
	case KindLogical:
		return "logical"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	default:
		return "unsupported"
	}
}

func ParseKind(name string) Kind {
	switch name {
	case "integer", "int":
		return KindInteger
	case "logical", "bool":
		return KindLogical
	case "real", "double", "float":
		return KindReal
	case "string", "character":
		return KindString
	default:
		return KindUnsupported
	}
}

/*
* Maps an arrow data type to its element kind. Dictionary encoded
* columns are categorical codes and therefore count as integers.
 */
func KindOf(dtype arrow.DataType) Kind {
	switch dtype.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64, arrow.DICTIONARY:
		return KindInteger
	case arrow.BOOL:
		return KindLogical
	case arrow.FLOAT32, arrow.FLOAT64:
		return KindReal
	case arrow.STRING:
		return KindString
	default:
		return KindUnsupported
	}
}
