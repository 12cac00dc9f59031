package entity

import "errors"

// SendMailcastMessage is the request body of the WhatsApp mailcast API
type SendMailcastMessage struct {
	CompanyID   string  `json:"companyId"`
	AgentID     string  `json:"agentId"`
	PhoneNumber string  `json:"phoneNumber"`
	Message     Message `json:"message"`
	Type        string  `json:"type"`
}

// Message is the text body of a mailcast message
type Message struct {
	Text string `json:"text"`
}

// Validate rejects an empty message
func (m Message) Validate() error {
	if m.Text == "" {
		return errors.New("message text is required")
	}
	return nil
}

// SendMailcastMessageResponse is the envelope returned by the mailcast API
type SendMailcastMessageResponse struct {
	Success bool `json:"success"`
	Data    struct {
		TaskID string `json:"taskId"`
		Status string `json:"status"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}
