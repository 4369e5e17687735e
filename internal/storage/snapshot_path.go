package storage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const snapshotContentType = "application/json"

// buildSnapshotKey 生成按年/月归档的快照对象键。
func buildSnapshotKey(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("snapshots/%04d/%02d/medialog-%s.json",
		now.Year(), now.Month(), now.Format("20060102-150405"))
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}
