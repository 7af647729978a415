package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// Vendas são importadas aos milhares, por isso um id maior
	recordIDLength = 16
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

func GenerateRecordID() (string, error) {
	return gonanoid.Generate(characters, recordIDLength)
}
