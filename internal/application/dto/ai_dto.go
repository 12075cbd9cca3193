package dto

// AIDescriptionRequest body para POST /api/ai/description.
type AIDescriptionRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AITextResponse texto libre devuelto por el asistente; el núcleo no lo
// interpreta ni actúa sobre él.
type AITextResponse struct {
	Text string `json:"text"`
}
