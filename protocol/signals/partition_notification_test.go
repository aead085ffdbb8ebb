package signals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRunID = "3f2b8c1a-9d4e-4f6a-8b2c-1d3e5f7a9b0c"

func TestSerializeDeserializeRoundtrip(t *testing.T) {
	tests := []struct {
		name         string
		notification *PartitionNotification
	}{
		{
			name:         "typical",
			notification: NewPartitionNotification(testRunID, 3, 12500, "/data/out/persons-03.parquet"),
		},
		{
			name:         "empty path",
			notification: NewPartitionNotification(testRunID, 0, 0, ""),
		},
		{
			name:         "large row count",
			notification: NewPartitionNotification(testRunID, 999, 1<<40, "persons-999.parquet"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := SerializePartitionNotification(tt.notification)
			require.NoError(t, err)

			decoded, err := DeserializePartitionNotification(data)
			require.NoError(t, err)

			assert.Equal(t, tt.notification.RunID, decoded.RunID)
			assert.Equal(t, tt.notification.PartitionIndex, decoded.PartitionIndex)
			assert.Equal(t, tt.notification.RowCount, decoded.RowCount)
			assert.Equal(t, tt.notification.Path, decoded.Path)
		})
	}
}

func TestSerializeRejectsBadRunID(t *testing.T) {
	_, err := SerializePartitionNotification(NewPartitionNotification("short", 1, 10, "x.parquet"))
	assert.Error(t, err)
}

func TestSerializeRejectsOversizedPath(t *testing.T) {
	path := strings.Repeat("p", 0x10000)
	_, err := SerializePartitionNotification(NewPartitionNotification(testRunID, 1, 10, path))
	assert.Error(t, err)
}

func TestDeserializeTooShort(t *testing.T) {
	_, err := DeserializePartitionNotification([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestDeserializeWrongMessageType(t *testing.T) {
	data, err := SerializePartitionNotification(NewPartitionNotification(testRunID, 1, 10, "x.parquet"))
	require.NoError(t, err)

	data[HeaderLengthSize+TotalLengthSize] = 42
	_, err = DeserializePartitionNotification(data)
	assert.ErrorContains(t, err, "invalid message type")
}

func TestDeserializeTruncatedPath(t *testing.T) {
	data, err := SerializePartitionNotification(NewPartitionNotification(testRunID, 1, 10, "persons.parquet"))
	require.NoError(t, err)

	_, err = DeserializePartitionNotification(data[:len(data)-4])
	assert.Error(t, err)
}
