package duckext

import (
	"sort"
	"strings"

	"github.com/marcboeker/duckext/mapping"
)

// Type wraps the corresponding DuckDB type enum.
type Type mapping.Type

const (
	TYPE_INVALID      = Type(mapping.TypeInvalid)
	TYPE_BOOLEAN      = Type(mapping.TypeBoolean)
	TYPE_TINYINT      = Type(mapping.TypeTinyInt)
	TYPE_SMALLINT     = Type(mapping.TypeSmallInt)
	TYPE_INTEGER      = Type(mapping.TypeInteger)
	TYPE_BIGINT       = Type(mapping.TypeBigInt)
	TYPE_UTINYINT     = Type(mapping.TypeUTinyInt)
	TYPE_USMALLINT    = Type(mapping.TypeUSmallInt)
	TYPE_UINTEGER     = Type(mapping.TypeUInteger)
	TYPE_UBIGINT      = Type(mapping.TypeUBigInt)
	TYPE_FLOAT        = Type(mapping.TypeFloat)
	TYPE_DOUBLE       = Type(mapping.TypeDouble)
	TYPE_TIMESTAMP    = Type(mapping.TypeTimestamp)
	TYPE_DATE         = Type(mapping.TypeDate)
	TYPE_TIME         = Type(mapping.TypeTime)
	TYPE_INTERVAL     = Type(mapping.TypeInterval)
	TYPE_HUGEINT      = Type(mapping.TypeHugeInt)
	TYPE_UHUGEINT     = Type(mapping.TypeUHugeInt)
	TYPE_VARCHAR      = Type(mapping.TypeVarchar)
	TYPE_BLOB         = Type(mapping.TypeBlob)
	TYPE_DECIMAL      = Type(mapping.TypeDecimal)
	TYPE_TIMESTAMP_S  = Type(mapping.TypeTimestampS)
	TYPE_TIMESTAMP_MS = Type(mapping.TypeTimestampMS)
	TYPE_TIMESTAMP_NS = Type(mapping.TypeTimestampNS)
	TYPE_ENUM         = Type(mapping.TypeEnum)
	TYPE_LIST         = Type(mapping.TypeList)
	TYPE_STRUCT       = Type(mapping.TypeStruct)
	TYPE_MAP          = Type(mapping.TypeMap)
	TYPE_ARRAY        = Type(mapping.TypeArray)
	TYPE_UUID         = Type(mapping.TypeUUID)
	TYPE_UNION        = Type(mapping.TypeUnion)
	TYPE_BIT          = Type(mapping.TypeBit)
	TYPE_TIME_TZ      = Type(mapping.TypeTimeTZ)
	TYPE_TIMESTAMP_TZ = Type(mapping.TypeTimestampTZ)
	TYPE_ANY          = Type(mapping.TypeAny)
	TYPE_VARINT       = Type(mapping.TypeVarInt)
	TYPE_SQLNULL      = Type(mapping.TypeSQLNull)
)

var typeToStringMap = map[Type]string{
	TYPE_INVALID:      "INVALID",
	TYPE_BOOLEAN:      "BOOLEAN",
	TYPE_TINYINT:      "TINYINT",
	TYPE_SMALLINT:     "SMALLINT",
	TYPE_INTEGER:      "INTEGER",
	TYPE_BIGINT:       "BIGINT",
	TYPE_UTINYINT:     "UTINYINT",
	TYPE_USMALLINT:    "USMALLINT",
	TYPE_UINTEGER:     "UINTEGER",
	TYPE_UBIGINT:      "UBIGINT",
	TYPE_FLOAT:        "FLOAT",
	TYPE_DOUBLE:       "DOUBLE",
	TYPE_TIMESTAMP:    "TIMESTAMP",
	TYPE_DATE:         "DATE",
	TYPE_TIME:         "TIME",
	TYPE_INTERVAL:     "INTERVAL",
	TYPE_HUGEINT:      "HUGEINT",
	TYPE_UHUGEINT:     "UHUGEINT",
	TYPE_VARCHAR:      "VARCHAR",
	TYPE_BLOB:         "BLOB",
	TYPE_DECIMAL:      "DECIMAL",
	TYPE_TIMESTAMP_S:  "TIMESTAMP_S",
	TYPE_TIMESTAMP_MS: "TIMESTAMP_MS",
	TYPE_TIMESTAMP_NS: "TIMESTAMP_NS",
	TYPE_ENUM:         "ENUM",
	TYPE_LIST:         "LIST",
	TYPE_STRUCT:       "STRUCT",
	TYPE_MAP:          "MAP",
	TYPE_ARRAY:        "ARRAY",
	TYPE_UUID:         "UUID",
	TYPE_UNION:        "UNION",
	TYPE_BIT:          "BIT",
	TYPE_TIME_TZ:      "TIMETZ",
	TYPE_TIMESTAMP_TZ: "TIMESTAMPTZ",
	TYPE_ANY:          "ANY",
	TYPE_VARINT:       "VARINT",
	TYPE_SQLNULL:      "SQLNULL",
}

// Types that cannot be created from their id alone.
var nestedTypes = map[Type]struct{}{
	TYPE_DECIMAL: {},
	TYPE_ENUM:    {},
	TYPE_LIST:    {},
	TYPE_STRUCT:  {},
	TYPE_MAP:     {},
	TYPE_ARRAY:   {},
	TYPE_UNION:   {},
}

// Alternative spellings accepted by ParseType.
var typeAliases = map[string]Type{
	"BOOL":         TYPE_BOOLEAN,
	"INT1":         TYPE_TINYINT,
	"INT2":         TYPE_SMALLINT,
	"INT":          TYPE_INTEGER,
	"INT4":         TYPE_INTEGER,
	"INT8":         TYPE_BIGINT,
	"LONG":         TYPE_BIGINT,
	"REAL":         TYPE_FLOAT,
	"FLOAT8":       TYPE_DOUBLE,
	"TEXT":         TYPE_VARCHAR,
	"STRING":       TYPE_VARCHAR,
	"BYTEA":        TYPE_BLOB,
	"DATETIME":     TYPE_TIMESTAMP,
	"TIME_TZ":      TYPE_TIME_TZ,
	"TIMESTAMP_TZ": TYPE_TIMESTAMP_TZ,
}

// String returns the SQL name of t.
func (t Type) String() string {
	if name, ok := typeToStringMap[t]; ok {
		return name
	}
	return typeToStringMap[TYPE_INVALID]
}

// ParseType returns the Type with the SQL name s. Matching is case-insensitive.
func ParseType(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if t, ok := typeAliases[name]; ok {
		return t, nil
	}
	for t, n := range typeToStringMap {
		if n == name && t != TYPE_INVALID {
			return t, nil
		}
	}
	return TYPE_INVALID, getError(errAPI, unknownTypeError(s))
}

// TypeNames returns the SQL names of all valid type ids, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typeToStringMap))
	for t, name := range typeToStringMap {
		if t != TYPE_INVALID {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
