package duckext

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// ArrowType returns the Apache Arrow type that DuckDB uses when it exports t.
// STRUCT maps to an Arrow struct and UNION maps to a dense Arrow union.
func ArrowType(t *LogicalType) (arrow.DataType, error) {
	if t.isNil() {
		return nil, getError(errAPI, errLogicalTypeIsNil)
	}
	dt, err := arrowType(t)
	if err != nil {
		return nil, getError(errAPI, err)
	}
	return dt, nil
}

func arrowType(t *LogicalType) (arrow.DataType, error) {
	id := t.ID()
	if dt, ok := arrowPrimitiveTypes[id]; ok {
		return dt, nil
	}

	switch id {
	case TYPE_DECIMAL:
		width, scale := t.decimalProperties()
		return &arrow.Decimal128Type{Precision: int32(width), Scale: int32(scale)}, nil

	case TYPE_LIST:
		child := t.listChild()
		defer child.Close()
		dt, err := arrowType(child)
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(dt), nil

	case TYPE_MAP:
		key, value := t.mapChildren()
		defer key.Close()
		defer value.Close()
		keyType, err := arrowType(key)
		if err != nil {
			return nil, err
		}
		valueType, err := arrowType(value)
		if err != nil {
			return nil, err
		}
		return arrow.MapOf(keyType, valueType), nil

	case TYPE_STRUCT:
		fields, err := arrowFields(t)
		if err != nil {
			return nil, err
		}
		return arrow.StructOf(fields...), nil

	case TYPE_UNION:
		fields, err := arrowFields(t)
		if err != nil {
			return nil, err
		}
		codes := make([]arrow.UnionTypeCode, len(fields))
		for i := range codes {
			codes[i] = arrow.UnionTypeCode(i)
		}
		return arrow.DenseUnionOf(fields, codes), nil
	}

	return nil, unsupportedTypeError(id.String())
}

func arrowFields(t *LogicalType) ([]arrow.Field, error) {
	fields := make([]arrow.Field, t.ChildCount())
	for i := range fields {
		name := t.childName(i)
		child := t.childType(i)
		dt, err := arrowType(child)
		child.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: field %q", err, name)
		}
		fields[i] = arrow.Field{Name: name, Type: dt, Nullable: true}
	}
	return fields, nil
}

var arrowPrimitiveTypes = map[Type]arrow.DataType{
	TYPE_BOOLEAN:      arrow.FixedWidthTypes.Boolean,
	TYPE_TINYINT:      arrow.PrimitiveTypes.Int8,
	TYPE_SMALLINT:     arrow.PrimitiveTypes.Int16,
	TYPE_INTEGER:      arrow.PrimitiveTypes.Int32,
	TYPE_BIGINT:       arrow.PrimitiveTypes.Int64,
	TYPE_UTINYINT:     arrow.PrimitiveTypes.Uint8,
	TYPE_USMALLINT:    arrow.PrimitiveTypes.Uint16,
	TYPE_UINTEGER:     arrow.PrimitiveTypes.Uint32,
	TYPE_UBIGINT:      arrow.PrimitiveTypes.Uint64,
	TYPE_FLOAT:        arrow.PrimitiveTypes.Float32,
	TYPE_DOUBLE:       arrow.PrimitiveTypes.Float64,
	TYPE_DATE:         arrow.FixedWidthTypes.Date32,
	TYPE_TIME:         arrow.FixedWidthTypes.Time64us,
	TYPE_TIMESTAMP:    arrow.FixedWidthTypes.Timestamp_us,
	TYPE_TIMESTAMP_S:  arrow.FixedWidthTypes.Timestamp_s,
	TYPE_TIMESTAMP_MS: arrow.FixedWidthTypes.Timestamp_ms,
	TYPE_TIMESTAMP_NS: arrow.FixedWidthTypes.Timestamp_ns,
	TYPE_TIMESTAMP_TZ: &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"},
	TYPE_INTERVAL:     arrow.FixedWidthTypes.MonthDayNanoInterval,
	TYPE_HUGEINT:      &arrow.Decimal128Type{Precision: 38, Scale: 0},
	TYPE_VARCHAR:      arrow.BinaryTypes.String,
	TYPE_BLOB:         arrow.BinaryTypes.Binary,
	TYPE_UUID:         &arrow.FixedSizeBinaryType{ByteWidth: 16},
	TYPE_SQLNULL:      arrow.Null,
}
