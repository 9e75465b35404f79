package wsmodels

const MsgTypeCandidates = "candidates"

type ServerMessage struct {
	MsgType string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
}
