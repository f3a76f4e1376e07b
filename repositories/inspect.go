package repositories

import (
	"fmt"
	"strings"
)

// DescribeRecord decodes a raw store entry for display by inspection tools.
func DescribeRecord(key string, val []byte) (kind string, detail string) {
	switch {
	case strings.HasPrefix(key, participantPrefix):
		p, err := unmarshalParticipant(val)
		if err != nil {
			return "PARTICIPANT", "unreadable: " + err.Error()
		}
		if p.Local {
			return "PARTICIPANT", p.Name + " (local)"
		}
		return "PARTICIPANT", p.Name
	case strings.HasPrefix(key, sessionPrefix):
		s, err := unmarshalSession(val)
		if err != nil {
			return "SESSION", "unreadable: " + err.Error()
		}
		return "SESSION", fmt.Sprintf("%s %v", s.CommittedAt.Format("2006-01-02 15:04"), s.Groups)
	case key == pendingKey:
		a, err := unmarshalAllocation(val)
		if err != nil {
			return "PENDING", "unreadable: " + err.Error()
		}
		groups := make([][]string, 0, len(a))
		for _, g := range a {
			groups = append(groups, g.Names())
		}
		return "PENDING", fmt.Sprintf("%v", groups)
	case key == groupSizeKey, key == schemaVersionKey:
		n, err := unmarshalInt(val)
		if err != nil {
			return "SETTING", "unreadable: " + err.Error()
		}
		return "SETTING", fmt.Sprintf("%d", n)
	default:
		return "UNKNOWN", fmt.Sprintf("%d bytes", len(val))
	}
}
