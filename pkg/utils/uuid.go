package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idSize     = 16
)

// GenerateID gera um identificador alfanumérico para registros de venda
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idSize)
}
