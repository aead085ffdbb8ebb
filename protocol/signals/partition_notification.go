// Package signals defines the wire messages published when generated
// partition files land.
package signals

import (
	"encoding/binary"
	"fmt"
)

// Message framing sizes in bytes
const (
	HeaderLengthSize = 2
	TotalLengthSize  = 4
	MsgTypeIDSize    = 1

	RunIDSize          = 36 // canonical UUID string
	PartitionIndexSize = 4
	RowCountSize       = 8
	PathLengthSize     = 2
)

// PartitionNotificationType identifies a PartitionNotification message
const PartitionNotificationType = 1

// PartitionNotification announces that one output partition has been
// generated and durably written.
type PartitionNotification struct {
	RunID          string
	PartitionIndex int
	RowCount       int64
	Path           string
}

// NewPartitionNotification creates a new PartitionNotification
func NewPartitionNotification(runID string, partitionIndex int, rowCount int64, path string) *PartitionNotification {
	return &PartitionNotification{
		RunID:          runID,
		PartitionIndex: partitionIndex,
		RowCount:       rowCount,
		Path:           path,
	}
}

// SerializePartitionNotification serializes a PartitionNotification to bytes
func SerializePartitionNotification(n *PartitionNotification) ([]byte, error) {
	if len(n.RunID) != RunIDSize {
		return nil, fmt.Errorf("run_id must be %d bytes, got %d", RunIDSize, len(n.RunID))
	}
	if len(n.Path) > 0xFFFF {
		return nil, fmt.Errorf("path too long: %d bytes", len(n.Path))
	}

	headerLength := HeaderLengthSize + TotalLengthSize + MsgTypeIDSize
	totalLength := headerLength + RunIDSize + PartitionIndexSize + RowCountSize +
		PathLengthSize + len(n.Path)

	buf := make([]byte, totalLength)
	offset := 0

	// Header
	binary.BigEndian.PutUint16(buf[offset:], uint16(headerLength))
	offset += HeaderLengthSize

	binary.BigEndian.PutUint32(buf[offset:], uint32(totalLength))
	offset += TotalLengthSize

	buf[offset] = PartitionNotificationType
	offset += MsgTypeIDSize

	// RunID
	copy(buf[offset:], n.RunID)
	offset += RunIDSize

	// PartitionIndex
	binary.BigEndian.PutUint32(buf[offset:], uint32(n.PartitionIndex))
	offset += PartitionIndexSize

	// RowCount
	binary.BigEndian.PutUint64(buf[offset:], uint64(n.RowCount))
	offset += RowCountSize

	// Path
	binary.BigEndian.PutUint16(buf[offset:], uint16(len(n.Path)))
	offset += PathLengthSize
	copy(buf[offset:], n.Path)

	return buf, nil
}

// DeserializePartitionNotification deserializes bytes to a PartitionNotification
func DeserializePartitionNotification(data []byte) (*PartitionNotification, error) {
	minLength := HeaderLengthSize + TotalLengthSize + MsgTypeIDSize +
		RunIDSize + PartitionIndexSize + RowCountSize + PathLengthSize
	if len(data) < minLength {
		return nil, fmt.Errorf("data too short for PartitionNotification: %d bytes", len(data))
	}

	offset := 0

	// Header
	offset += HeaderLengthSize

	totalLength := binary.BigEndian.Uint32(data[offset:])
	offset += TotalLengthSize
	if int(totalLength) != len(data) {
		return nil, fmt.Errorf("total length %d does not match data length %d", totalLength, len(data))
	}

	msgTypeID := int(data[offset])
	offset += MsgTypeIDSize
	if msgTypeID != PartitionNotificationType {
		return nil, fmt.Errorf("invalid message type for PartitionNotification: %d", msgTypeID)
	}

	// RunID
	runID := string(data[offset : offset+RunIDSize])
	offset += RunIDSize

	// PartitionIndex
	partitionIndex := int(binary.BigEndian.Uint32(data[offset:]))
	offset += PartitionIndexSize

	// RowCount
	rowCount := int64(binary.BigEndian.Uint64(data[offset:]))
	offset += RowCountSize

	// Path
	pathLength := int(binary.BigEndian.Uint16(data[offset:]))
	offset += PathLengthSize
	if offset+pathLength != len(data) {
		return nil, fmt.Errorf("path length %d does not match remaining data %d", pathLength, len(data)-offset)
	}
	path := string(data[offset : offset+pathLength])

	return &PartitionNotification{
		RunID:          runID,
		PartitionIndex: partitionIndex,
		RowCount:       rowCount,
		Path:           path,
	}, nil
}
