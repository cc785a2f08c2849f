package models

// Pergunta representa uma pergunta do quiz com suas alternativas
type Pergunta struct {
	ID           string   `json:"id" db:"id"`
	Text         string   `json:"text" db:"text"`
	Alternatives []string `json:"alternatives" db:"alternatives"`
	CorrectIndex int      `json:"correct_index" db:"correct_index"`
	Category     string   `json:"category" db:"category"`
	Level        string   `json:"level" db:"level"`
	Tags         []string `json:"tags" db:"tags"`
	Points       int      `json:"points" db:"points"`
}
