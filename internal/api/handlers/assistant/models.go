package assistant

// TextResponse сгенерированный текст
type TextResponse struct {
	Text string `json:"text"`
}

// SearchRequest запрос поиска питомцев на естественном языке
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse ID найденных питомцев
type SearchResponse struct {
	PetIDs []string `json:"petIds"`
}
