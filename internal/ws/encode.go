package ws

import "encoding/json"

// encode marshals an Update, falling back to an empty JSON object on the
// (practically unreachable) marshal error rather than panicking inside
// the hub's broadcast loop.
func encode(update Update) []byte {
	b, err := json.Marshal(update)
	if err != nil {
		return []byte("{}")
	}
	return b
}
