package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ppiankov/teamlens/internal/model"
)

// Cache stores analysis reports so batch runs that see the same table
// content again skip the recomputation.
type Cache interface {
	Get(key string) (*model.Report, bool)
	Set(key string, report *model.Report)
	Clear()
}

// Key derives a cache key from the raw table document and the analysis
// rate. Two files with identical content share one entry regardless of
// path.
func Key(doc []byte, rate int) string {
	hash := sha256.Sum256(doc)
	return fmt.Sprintf("teamlens:v1:%d:%s", rate, hex.EncodeToString(hash[:]))
}
