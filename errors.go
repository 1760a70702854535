package duckext

import (
	"errors"
	"fmt"
)

func getError(errType error, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", duckextErrMsg, errType)
	}
	return fmt.Errorf("%s: %w: %w", duckextErrMsg, errType, err)
}

func duckdbError(msg string) error {
	return fmt.Errorf("%s: %w", duckdbErrMsg, errors.New(msg))
}

func addIndexToError(err error, idx int) error {
	return fmt.Errorf("%w: %s: %d", err, indexErrMsg, idx)
}

func unknownTypeError(name string) error {
	return fmt.Errorf("%s: %q", unknownTypeErrMsg, name)
}

func unsupportedTypeError(name string) error {
	return fmt.Errorf("%s: %s", unsupportedTypeErrMsg, name)
}

func memberCountError(names int, types int) error {
	return fmt.Errorf("%w: got %d names and %d types", errMemberCount, names, types)
}

func tryOtherFuncError(hint string) error {
	return fmt.Errorf("%s: %s", tryOtherFuncErrMsg, hint)
}

const (
	duckextErrMsg         = "duckext"
	duckdbErrMsg          = "duckdb error"
	indexErrMsg           = "index"
	unknownTypeErrMsg     = "unknown type name"
	unsupportedTypeErrMsg = "unsupported data type"
	tryOtherFuncErrMsg    = "please try this function instead"
)

var (
	errAPI         = errors.New("API error")
	errInternal    = errors.New("internal error, please file a bug report")
	errOpen        = errors.New("could not open database")
	errConnect     = errors.New("could not connect to database")
	errQuery       = errors.New("could not execute query")
	errEmptyResult = errors.New("query returned no rows")

	errCreateConfig = errors.New("could not create config for database")
	errSetConfig    = errors.New("could not set invalid or local option for global database config")
	errConfigFlag   = errors.New("could not read config flag")

	errMemberCount      = errors.New("names and types must have the same length")
	errNoMembers        = errors.New("at least one member is required")
	errTooManyMembers   = errors.New("too many UNION members")
	errMemberTypeIsNil  = errors.New("member type is nil")
	errLogicalTypeIsNil = errors.New("logical type is nil")
	errNotNested        = errors.New("type has no child types")
	errChildIndex       = errors.New("child index out of range")
	errColumnIndex      = errors.New("column index out of range")
	errVectorSize       = errors.New("data chunks cannot exceed duckdb's internal vector size")

	errScalarFunctionNoName          = errors.New("missing scalar function name")
	errScalarFunctionNoEval          = errors.New("missing scalar function evaluation routine")
	errScalarFunctionParamIsNil      = errors.New("scalar function parameter type is nil")
	errScalarFunctionReturnTypeIsNil = errors.New("scalar function return type is nil")
	errScalarFunctionReturnTypeIsANY = errors.New("scalar function return type must not be ANY")
	errScalarFunctionClosed          = errors.New("scalar function is already closed")
	errScalarFunctionRegister        = errors.New("could not register scalar function")

	errTableFunctionNoName     = errors.New("missing table function name")
	errTableFunctionIncomplete = errors.New("table function requires bind, init and function callbacks")
	errTableFunctionClosed     = errors.New("table function is already closed")
	errTableFunctionRegister   = errors.New("could not register table function")

	errReplacementScanParam = errors.New("unsupported replacement scan parameter type")
)
