package models

import (
	"bytes"
	"encoding/json"
)

// ID is a backend identifier. The backend emits numeric ids for some records
// and string ids for others, both decode into an ID.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}
