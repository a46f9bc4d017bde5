// Package models defines domain models for Porthole.
package models

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ContainerRecord is one entry of the runtime's container list, in the
// runtime's native JSON encoding. Unknown fields are ignored on decode.
type ContainerRecord struct {
	ID      string        `json:"Id"`
	Names   []string      `json:"Names"`
	Image   string        `json:"Image"`
	State   string        `json:"State"`
	Created Timestamp     `json:"Created"`
	Ports   []PortBinding `json:"Ports"`
}

// PortBinding is a single port mapping of a container.
// PublicPort is zero when the private port is not published on the host.
type PortBinding struct {
	PrivatePort uint16 `json:"PrivatePort"`
	PublicPort  uint16 `json:"PublicPort,omitempty"`
	Type        string `json:"Type"`
}

// Published reports whether the port is reachable on the host.
func (p PortBinding) Published() bool {
	return p.PublicPort != 0
}

// FirstName returns the canonical name exactly as stored, or "" when the record has none.
func (c ContainerRecord) FirstName() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// DisplayName returns the canonical name with the runtime's leading slash removed.
func (c ContainerRecord) DisplayName() string {
	return strings.TrimPrefix(c.FirstName(), "/")
}

// Timestamp is a creation time in seconds since the Unix epoch. Some
// runtimes and proxies encode it as a JSON string, others as a number;
// both decode to the same value.
type Timestamp int64

// UnmarshalJSON accepts 1700000000 as well as "1700000000".
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return fmt.Errorf("created timestamp is missing")
	}
	raw = strings.Trim(raw, `"`)

	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid created timestamp %q: %w", raw, err)
	}
	*t = Timestamp(v)
	return nil
}

// Time converts the timestamp to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// DecodeContainers reads a container list in the runtime's JSON encoding.
func DecodeContainers(r io.Reader) ([]ContainerRecord, error) {
	var records []ContainerRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode container list: %w", err)
	}
	return records, nil
}
