package repositories

import (
	"fmt"
	"strings"

	"lunch-roll/domain"
	errs "lunch-roll/errors"

	"github.com/tidwall/gjson"
)

// LegacyState is the browser-era export, in either of its two shapes:
//
//	v1: {"participants": ["Ana", "Bo"], "groupSize": 3}
//	v2: {"version": 2, "participants": [{"name": "Ana", "local": true}], "groupSize": 2, "history": [[["Ana", "Bo"]]]}
type LegacyState struct {
	Version      int
	Participants []domain.Participant
	// GroupSize is 0 when the export carries no usable size.
	GroupSize int
	History   [][][]string
}

// ParseLegacyState reads an export leniently: entries that do not fit the
// expected shape are dropped rather than failing the whole import.
func ParseLegacyState(raw []byte) (LegacyState, error) {
	if !gjson.ValidBytes(raw) {
		return LegacyState{}, fmt.Errorf("%w: not valid JSON", errs.ErrUnsupportedImport)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return LegacyState{}, fmt.Errorf("%w: expected a JSON object", errs.ErrUnsupportedImport)
	}

	state := LegacyState{Version: 1}
	if version := root.Get("version"); version.Type == gjson.Number {
		state.Version = int(version.Int())
	}
	state.Participants = legacyParticipants(root.Get("participants"))
	if size := root.Get("groupSize"); size.Type == gjson.Number && size.Int() >= 2 {
		state.GroupSize = int(size.Int())
	}
	state.History = legacyHistory(root.Get("history"))
	return state, nil
}

func legacyParticipants(list gjson.Result) []domain.Participant {
	if !list.IsArray() {
		return nil
	}
	var participants []domain.Participant
	seen := map[string]struct{}{}
	list.ForEach(func(_, item gjson.Result) bool {
		var participant domain.Participant
		switch {
		case item.Type == gjson.String:
			participant.Name = strings.TrimSpace(item.String())
		case item.IsObject() && item.Get("name").Type == gjson.String:
			participant.Name = strings.TrimSpace(item.Get("name").String())
			participant.Local = item.Get("local").Bool()
		default:
			return true
		}
		if participant.Name == "" {
			return true
		}
		if _, ok := seen[participant.Key()]; ok {
			return true
		}
		seen[participant.Key()] = struct{}{}
		participants = append(participants, participant)
		return true
	})
	return participants
}

func legacyHistory(list gjson.Result) [][][]string {
	if !list.IsArray() {
		return nil
	}
	var history [][][]string
	list.ForEach(func(_, session gjson.Result) bool {
		if !session.IsArray() {
			return true
		}
		var groups [][]string
		session.ForEach(func(_, group gjson.Result) bool {
			if !group.IsArray() {
				return true
			}
			var names []string
			group.ForEach(func(_, name gjson.Result) bool {
				if name.Type == gjson.String && strings.TrimSpace(name.String()) != "" {
					names = append(names, strings.TrimSpace(name.String()))
				}
				return true
			})
			if len(names) >= 2 {
				groups = append(groups, names)
			}
			return true
		})
		if len(groups) > 0 {
			history = append(history, groups)
		}
		return true
	})
	return history
}
