package common

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TagList 支持两种 JSON 形态的标签输入：字符串数组或逗号分隔的字符串。
type TagList []string

// UnmarshalJSON 实现 json.Unmarshaler 接口。
func (t *TagList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*t = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		return json.Unmarshal(data, (*[]string)(t))
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*t = []string{}
			return nil
		}
		*t = strings.Split(raw, ",")
		return nil
	default:
		return fmt.Errorf("tags must be a string or an array of strings")
	}
}

// ToSlice 返回底层切片的副本。
func (t TagList) ToSlice() []string {
	if len(t) == 0 {
		return []string{}
	}
	out := make([]string, len(t))
	copy(out, t)
	return out
}

// NormalizeTagNames trims, lowercases and deduplicates the provided tag
// names. Empty and whitespace-only tokens are discarded. The result is
// sorted alphabetically so repeated calls over equivalent input produce the
// same sequence.
func NormalizeTagNames(names []string) []string {
	if len(names) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}

	sort.Strings(out)
	return out
}
