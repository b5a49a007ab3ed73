package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// newID mints a collision-free identifier for nodes, edges and node types.
// Called only from the single dispatch path, so no synchronization is
// needed beyond what uuid provides.
func newID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}
