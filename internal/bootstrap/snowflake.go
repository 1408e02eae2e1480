package bootstrap

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	"os"

	"github.com/jt828/perfmon/pkg/snowflake"
	snowflakeImpl "github.com/jt828/perfmon/pkg/snowflake/implementation"
)

var ErrHostnameMissing = errors.New("HOSTNAME is not set")

// InitializeSnowflake derives the node ID from HOSTNAME, falling back to node 0
// outside of a pod.
func InitializeSnowflake() (snowflake.Snowflake, error) {
	nodeID, err := PodNodeID()
	if err != nil && !errors.Is(err, ErrHostnameMissing) {
		return nil, err
	}
	return snowflakeImpl.NewSnowflake(nodeID)
}

func PodNodeID() (int64, error) {
	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		return 0, ErrHostnameMissing
	}

	h := fnv.New64a()
	h.Write([]byte(hostname))
	nodeID := int64(binary.BigEndian.Uint64(h.Sum(nil)) % 1024)

	return nodeID, nil
}
