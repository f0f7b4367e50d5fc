package catalog

import "errors"

var (
	ErrProductNotFound  = errors.New("produto não encontrado")
	ErrInvalidStatus    = errors.New("status de produto inválido")
	ErrMissingName      = errors.New("o nome do produto é obrigatório")
	ErrAlreadyPublished = errors.New("produto já publicado no Shopify")
)
