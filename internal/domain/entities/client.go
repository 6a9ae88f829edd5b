package entities

import "encoding/json"

// Client is a customer registered for the shop, used only to prefill the form.
type Client struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	State       string `json:"state"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Document    string `json:"document"`
	Number      string `json:"number"`
}

func (c *Client) UnmarshalJSON(b []byte) error {
	type alias Client
	aux := struct {
		*alias
		ID         json.RawMessage `json:"id"`
		PostalCode json.RawMessage `json:"postal_code"`
		Number     json.RawMessage `json:"number"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.ID = scalarString(aux.ID)
	c.PostalCode = scalarString(aux.PostalCode)
	c.Number = scalarString(aux.Number)
	return nil
}
