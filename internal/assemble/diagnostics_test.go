package assemble

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsAccumulate(t *testing.T) {
	diag := &Diagnostics{}
	assert.Equal(t, 0, diag.Count())

	diag.warn(WarnUnresolvedReference, "urn:li:fsd_company:1", "company entity")
	diag.warn(WarnUnparsedDate, "Remote", "")

	assert.Equal(t, 2, diag.Count())
	assert.Equal(t, "unresolved_reference: urn:li:fsd_company:1 (company entity)", diag.Warnings[0].String())
	assert.Equal(t, "unparsed_date: Remote", diag.Warnings[1].String())
}

func TestStructureError(t *testing.T) {
	err := structureErr("missing %s", "data")
	assert.Equal(t, "response structure: missing data", err.Error())

	cause := errors.New("unexpected end of JSON input")
	wrapped := &StructureError{Message: "not decodable", Cause: cause}
	assert.Equal(t, "response structure: not decodable: unexpected end of JSON input", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}
