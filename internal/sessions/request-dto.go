package sessions

import (
	"bytes"
	"encoding/json"
)

// CountInput is the raw text typed into a ticket count field. JSON numbers
// are accepted as well as strings.
type CountInput string

func (c *CountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CountInput(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = CountInput(n.String())
	return nil
}

type SetCountRequest struct {
	Value CountInput `json:"value"`
}

type SetLocationRequest struct {
	Location string `json:"location" binding:"required"`
}

type SetDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type SetNameRequest struct {
	Name string `json:"name"`
}
