package queue

import "encoding/json"

// Message is the payload sent to downstream queue consumers. A job asks the
// worker to fetch a resume from SourceURL and screen it under ScreeningID.
type Message struct {
	ScreeningID    string `json:"screeningId"`
	SourceURL      string `json:"sourceUrl"`
	JobTitle       string `json:"jobTitle,omitempty"`
	JobDescription string `json:"jobDescription"`
	RequiredYears  int    `json:"requiredYears"`
	RequestID      string `json:"requestId"`
	EnqueuedAt     string `json:"enqueuedAt"`
	Version        int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
