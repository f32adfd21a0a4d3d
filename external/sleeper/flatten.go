package sleeper

import (
	"sort"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

const columnPlayerID = "player_id"

// Flatten turns the player dump into a table: the feed id first, then every
// attribute key seen anywhere in the dump, alphabetically. Rows are ordered
// by feed id so two snapshots of the same dump diff cleanly.
func Flatten(players map[string]map[string]any) *tabular.Table {
	keySet := make(map[string]struct{})
	for _, attrs := range players {
		for key := range attrs {
			if key == columnPlayerID {
				continue
			}
			keySet[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	table := tabular.New(append([]string{columnPlayerID}, keys...))
	row := make([]string, 1+len(keys))
	for _, id := range ids {
		attrs := players[id]
		row[0] = id
		for i, key := range keys {
			row[i+1] = stringify(attrs[key])
		}
		table.AppendRow(row)
	}
	return table
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		raw, err := sonic.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
