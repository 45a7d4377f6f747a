package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	fe := &FormatError{Msg: "row has 2 fields, header has 3 columns", Line: 3, Row: 1}
	assert.Equal(t, "toon: format error: row has 2 fields, header has 3 columns (line 3, row 1)", fe.Error())

	fe = &FormatError{Msg: "missing header line", Line: 2, Row: -1}
	assert.Equal(t, "toon: format error: missing header line (line 2)", fe.Error())

	ue := &UsageError{API: "TableBuilder.Append", Msg: "columns must be set before rows"}
	assert.Equal(t, "toon: usage error in TableBuilder.Append: columns must be set before rows", ue.Error())

	ce := &TypeCoercionError{Col: "age", Row: 4, Val: Int(300), Target: "int8"}
	assert.Equal(t, `toon: cannot coerce 300 into int8 (column "age", row 4)`, ce.Error())
}
