package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityKindFor(t *testing.T) {
	tests := []struct {
		record RecordKind
		want   EntityKind
	}{
		{RecordModule, EntityModule},
		{RecordMacro, EntityMacro},
		{RecordStruct, EntityStruct},
		{RecordCase, EntityControlFlow},
		{RecordReceive, EntityControlFlow},
		{RecordPipe, EntityPipe},
		{RecordAnonymousFunction, EntityAnonymousFunction},
	}

	for _, tt := range tests {
		t.Run(string(tt.record), func(t *testing.T) {
			got, ok := EntityKindFor(tt.record)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityKindForFunctionRecordUnmapped(t *testing.T) {
	// Function records resolve through visibility, not the table.
	_, ok := EntityKindFor(RecordFunction)
	assert.False(t, ok)

	assert.Equal(t, EntityPublicFunction, EntityKindForFunction("public"))
	assert.Equal(t, EntityPrivateFunction, EntityKindForFunction("private"))
}

func TestEveryMappedKindIsValid(t *testing.T) {
	for record, kind := range entityKinds {
		assert.True(t, kind.Valid(), "record %s maps to invalid kind %s", record, kind)
	}
}
